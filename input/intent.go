package input

// IntentType is the semantic action a key event resolves to
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // p
	IntentUp          // Up arrow, k, w
	IntentDown        // Down arrow, j, s
	IntentResize      // terminal resize
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentTogglePause: "pause",
	IntentUp:          "up",
	IntentDown:        "down",
	IntentResize:      "resize",
}

// String returns the intent name used in logs
func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Intent is a resolved input event
type Intent struct {
	Type IntentType

	// Width and Height are set for IntentResize
	Width, Height int
}
