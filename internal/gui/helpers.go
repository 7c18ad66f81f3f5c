//go:build cgo

package gui

import (
	"github.com/appengine-ltd/garden-sim/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.06, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.06, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+14, int32(rect.Y)+10, 22, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, y int32, size int32, clr rl.Color) {
	w := rl.MeasureText(text, size)
	x := int32(rect.X) + (int32(rect.Width)-w)/2
	rl.DrawText(text, x, int32(rect.Y)+y, size, clr)
}

func rlColor(c game.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// shade scales a color's channels, keeping alpha, for tile variation.
func shade(clr rl.Color, f float64) rl.Color {
	scale := func(c uint8) uint8 {
		v := int(float64(c) * f)
		return uint8(clampInt(v, 0, 255))
	}
	return rl.NewColor(scale(clr.R), scale(clr.G), scale(clr.B), clr.A)
}
