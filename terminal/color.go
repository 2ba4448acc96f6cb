package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBGray  = RGB{128, 128, 128}
)

// ParseHex parses "#rrggbb" or "rrggbb"
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cube levels of the xterm 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first of the 24 grayscale indices (232-255)
const grayscaleStart = 232

// RGBTo256 returns the nearest xterm-256 palette index, cube or grayscale ramp
func RGBTo256(c RGB) uint8 {
	ri, gi, bi := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
	cube := RGB{cubeValues[ri], cubeValues[gi], cubeValues[bi]}
	cubeIdx := uint8(16 + 36*int(ri) + 6*int(gi) + int(bi))

	// Grayscale level = 8 + 10*step
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := (avg - 8 + 5) / 10
	step = max(0, min(23, step))
	level := uint8(8 + 10*step)
	gray := RGB{level, level, level}

	if distSq(c, gray) < distSq(c, cube) {
		return uint8(grayscaleStart + step)
	}
	return cubeIdx
}

func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for i := 1; i < len(cubeValues); i++ {
		if d := absInt(int(v) - int(cubeValues[i])); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
