package terminal

// Key identifies a non-printable key, or KeyRune for printable input
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character, see Event.Rune

	KeyEscape
	KeyEnter
	KeyCtrlC

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyNone:   "None",
	KeyRune:   "Rune",
	KeyEscape: "Esc",
	KeyEnter:  "Enter",
	KeyCtrlC:  "Ctrl-C",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
}

// String returns a short key name for logs
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}
