package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateEventClosed(t *testing.T) {
	if ev := translateEvent(nil); ev.Type != EventClosed {
		t.Errorf("Expected EventClosed for nil, got %v", ev.Type)
	}
}

func TestTranslateEventPosted(t *testing.T) {
	posted := Event{Type: EventKey, Key: KeyRune, Rune: 'p'}
	ev := translateEvent(tcell.NewEventInterrupt(posted))
	if ev != posted {
		t.Errorf("Expected %+v, got %+v", posted, ev)
	}
}

func TestTranslateEventForeignInterrupt(t *testing.T) {
	ev := translateEvent(tcell.NewEventInterrupt("not an event"))
	if ev.Type != EventNone {
		t.Errorf("Expected EventNone, got %v", ev.Type)
	}
}

func TestKeyString(t *testing.T) {
	if KeyCtrlC.String() != "Ctrl-C" {
		t.Errorf("Unexpected name %q", KeyCtrlC.String())
	}
	if Key(999).String() != "Unknown" {
		t.Errorf("Unexpected name %q", Key(999).String())
	}
}
