package input

import "github.com/lixenwraith/vi-pong/terminal"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Non-printable keys (arrows, Esc, Ctrl+C)
	SpecialKeys map[terminal.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default bindings: arrows, k/j and w/s to move, p to pause
func DefaultKeyTable() *KeyTable {
	return NewKeyTable([]rune{'k', 'w'}, []rune{'j', 's'})
}

// NewKeyTable builds a table with the fixed system keys plus the given movement runes
// Movement runes override system runes when they collide
func NewKeyTable(up, down []rune) *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[terminal.Key]IntentType{
			terminal.KeyEscape: IntentQuit,
			terminal.KeyCtrlC:  IntentQuit,
			terminal.KeyUp:     IntentUp,
			terminal.KeyDown:   IntentDown,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentTogglePause,
			' ': IntentTogglePause,
		},
	}
	for _, r := range up {
		kt.Runes[r] = IntentUp
	}
	for _, r := range down {
		kt.Runes[r] = IntentDown
	}
	return kt
}

// Resolve maps a terminal event to an intent
func (kt *KeyTable) Resolve(ev terminal.Event) Intent {
	switch ev.Type {
	case terminal.EventResize:
		return Intent{Type: IntentResize, Width: ev.Width, Height: ev.Height}
	case terminal.EventClosed:
		return Intent{Type: IntentQuit}
	case terminal.EventKey:
		if ev.Key == terminal.KeyRune {
			return Intent{Type: kt.Runes[ev.Rune]}
		}
		return Intent{Type: kt.SpecialKeys[ev.Key]}
	}
	return Intent{}
}
