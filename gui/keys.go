package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-pong/match"
)

// keysFor maps binding runes to ebiten keys; only a-z and 0-9 have a physical key
func keysFor(runes []rune) []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(runes))
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			keys = append(keys, ebiten.KeyA+ebiten.Key(r-'a'))
		case r >= 'A' && r <= 'Z':
			keys = append(keys, ebiten.KeyA+ebiten.Key(r-'A'))
		case r >= '0' && r <= '9':
			keys = append(keys, ebiten.KeyDigit0+ebiten.Key(r-'0'))
		}
	}
	return keys
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// keyboard reads held directions straight from the window; no hold windows are needed
// because ebiten reports key releases
type keyboard struct {
	up   []ebiten.Key
	down []ebiten.Key
}

func newKeyboard(up, down []rune) *keyboard {
	return &keyboard{
		up:   append([]ebiten.Key{ebiten.KeyArrowUp}, keysFor(up)...),
		down: append([]ebiten.Key{ebiten.KeyArrowDown}, keysFor(down)...),
	}
}

// Snapshot reports the directions held right now; call only from Update
func (k *keyboard) Snapshot() match.Input {
	return match.Input{Up: anyPressed(k.up), Down: anyPressed(k.down)}
}
