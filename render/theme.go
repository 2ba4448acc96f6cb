package render

import "github.com/lixenwraith/vi-pong/terminal"

// Theme holds the colors of every drawn element
type Theme struct {
	Background terminal.RGB
	Net        terminal.RGB
	Player     terminal.RGB
	Computer   terminal.RGB
	Ball       terminal.RGB
	Text       terminal.RGB

	StatusFg terminal.RGB
	StatusBg terminal.RGB
}

// DefaultTheme is white on black
func DefaultTheme() Theme {
	return Theme{
		Background: terminal.RGBBlack,
		Net:        terminal.RGBWhite,
		Player:     terminal.RGBWhite,
		Computer:   terminal.RGBWhite,
		Ball:       terminal.RGBWhite,
		Text:       terminal.RGBWhite,
		StatusFg:   terminal.RGBBlack,
		StatusBg:   terminal.RGBGray,
	}
}
