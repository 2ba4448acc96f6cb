package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Attr is a text attribute bitmask
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << 0
	AttrDim     Attr = 1 << 1
	AttrReverse Attr = 1 << 2
)

// Cell is a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal is the screen surface used by the game
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor
	Init() error

	// Fini restores the terminal; safe to call multiple times
	Fini()

	// Size returns the current dimensions in cells
	Size() (width, height int)

	// ColorMode returns the color capability in use
	ColorMode() ColorMode

	// Flush draws a row-major cell buffer (cells[y*width+x]) and shows it
	Flush(cells []Cell, width, height int)

	// Sync forces a full redraw on the next Flush
	Sync()

	// PollEvent blocks until the next event; EventClosed after Fini
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

// ErrNotTerminal is returned by Init when stdin is not a tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

// tcellTerminal implements Terminal on a tcell screen
type tcellTerminal struct {
	screen    tcell.Screen
	colorMode ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal; the screen is not touched until Init
func New(colorMode ColorMode) Terminal {
	return &tcellTerminal{colorMode: colorMode}
}

// Init enters raw mode and sets up the screen
func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	// tcell reads this when the screen is created
	if t.colorMode == ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	t.screen = screen
	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *tcellTerminal) Size() (int, int) {
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

// ColorMode returns the configured color capability
func (t *tcellTerminal) ColorMode() ColorMode {
	return t.colorMode
}

// Flush writes the cell buffer and shows it; tcell diffs against the previous frame
func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	if t.screen == nil {
		return
	}
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			t.screen.SetContent(x, y, c.Rune, nil, t.style(c))
		}
	}
	t.screen.Show()
}

// Sync forces a full redraw
func (t *tcellTerminal) Sync() {
	if t.screen != nil {
		t.screen.Sync()
	}
}

// PollEvent blocks for the next event, skipping ones the game does not use
func (t *tcellTerminal) PollEvent() Event {
	if t.screen == nil {
		return Event{Type: EventClosed}
	}
	for {
		ev := translateEvent(t.screen.PollEvent())
		if ev.Type != EventNone {
			return ev
		}
	}
}

// PostEvent injects ev into the event stream
func (t *tcellTerminal) PostEvent(ev Event) {
	if t.screen != nil {
		t.screen.PostEvent(tcell.NewEventInterrupt(ev))
	}
}

func (t *tcellTerminal) style(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(t.color(c.Fg)).
		Background(t.color(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (t *tcellTerminal) color(c RGB) tcell.Color {
	if t.colorMode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}

// Reset sequences written by EmergencyReset
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset restores a usable terminal without a Terminal instance
// Used from crash handlers when the screen could not be finalized normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone do not restore termios
	resetTerminalMode()
}
