package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatStatus(t *testing.T) {
	left, right := FormatStatus(StatusInfo{
		Elapsed:   83*time.Second + 400*time.Millisecond,
		Ticks:     4980,
		Speed:     6.5,
		Rally:     3,
		BestRally: 7,
	})

	assert.Contains(t, left, "01:23")
	assert.Contains(t, left, "tick 4980")
	assert.Contains(t, left, "speed 6.5")
	assert.Contains(t, left, "rally 3 (best 7)")
	assert.NotContains(t, right, "PAUSED")

	_, right = FormatStatus(StatusInfo{Paused: true})
	assert.True(t, strings.HasPrefix(right, "PAUSED"))
}

func TestDrawStatusLine(t *testing.T) {
	th := DefaultTheme()
	buf := NewRenderBuffer(80, 3)
	DrawStatusLine(buf, 2, StatusInfo{Paused: true}, th)

	_, right := FormatStatus(StatusInfo{Paused: true})
	var got strings.Builder
	for x := 80 - len(right); x < 80; x++ {
		c, _ := buf.Get(x, 2)
		got.WriteRune(c.Rune)
		assert.Equal(t, th.StatusBg, c.Bg)
	}
	assert.Equal(t, right, got.String())

	c, _ := buf.Get(0, 1)
	assert.Equal(t, ' ', c.Rune, "other rows untouched")
}
