package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/terminal"
)

// StatusInfo is what the status bar shows for one frame
type StatusInfo struct {
	Elapsed   time.Duration
	Ticks     int64
	Speed     float64
	Rally     int64
	BestRally int64
	Paused    bool
}

const statusHints = "[p]ause [q]uit"

// FormatStatus returns the left and right segments of the status bar
func FormatStatus(info StatusInfo) (left, right string) {
	elapsed := info.Elapsed.Truncate(time.Second)
	m := int(elapsed / time.Minute)
	s := int((elapsed % time.Minute) / time.Second)

	left = fmt.Sprintf(" vi-pong  %02d:%02d  tick %d  speed %.1f  rally %d (best %d)",
		m, s, info.Ticks, info.Speed, info.Rally, info.BestRally)

	right = statusHints + " "
	if info.Paused {
		right = "PAUSED  " + right
	}
	return left, right
}

// DrawStatusLine fills row of buf with the status bar; the right segment wins on overlap
func DrawStatusLine(buf *RenderBuffer, row int, info StatusInfo, th Theme) {
	left, right := FormatStatus(info)
	blank := terminal.Cell{Rune: ' ', Fg: th.StatusFg, Bg: th.StatusBg}

	for x := 0; x < buf.Width(); x++ {
		buf.Set(x, row, blank)
	}

	x := 0
	for _, r := range left {
		buf.Set(x, row, terminal.Cell{Rune: r, Fg: th.StatusFg, Bg: th.StatusBg})
		x++
	}

	rr := []rune(right)
	x = buf.Width() - len(rr)
	for _, r := range rr {
		attrs := terminal.AttrNone
		if info.Paused {
			attrs = terminal.AttrBold
		}
		buf.Set(x, row, terminal.Cell{Rune: r, Fg: th.StatusFg, Bg: th.StatusBg, Attrs: attrs})
		x++
	}
}
