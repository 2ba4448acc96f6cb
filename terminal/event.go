package terminal

import "github.com/gdamore/tcell/v2"

// EventType classifies terminal events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
)

// Event is a terminal input or lifecycle event
type Event struct {
	Type EventType

	// EventKey
	Key  Key
	Rune rune

	// EventResize
	Width  int
	Height int
}

// translateEvent converts a tcell event; unknown events map to EventNone
func translateEvent(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		if posted, ok := ev.Data().(Event); ok {
			return posted
		}
	}
	return Event{Type: EventNone}
}

func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	default:
		out.Key = KeyNone
	}
	return out
}
