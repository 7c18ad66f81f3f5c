//go:build cgo

package gui

import "testing"

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := wrapIndex(tc.i, tc.n); got != tc.want {
			t.Fatalf("wrapIndex(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestShadeClampsChannels(t *testing.T) {
	bright := shade(colorGrass, 4.0)
	if bright.R != 255 || bright.G != 255 || bright.B != 255 {
		t.Fatalf("oversaturated shade must clamp to white, got %+v", bright)
	}
	dark := shade(colorGrass, 0)
	if dark.R != 0 || dark.G != 0 || dark.B != 0 {
		t.Fatalf("zero shade must clamp to black, got %+v", dark)
	}
	if got := shade(colorGrass, 1.0); got != colorGrass {
		t.Fatalf("identity shade changed the color: %+v", got)
	}
}

func TestTileJitterIsStablePerTile(t *testing.T) {
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			j := tileJitter(x, y)
			if j < 0.9 || j > 1.1 {
				t.Fatalf("jitter at (%d,%d) out of range: %.3f", x, y, j)
			}
			if j != tileJitter(x, y) {
				t.Fatalf("jitter at (%d,%d) is not stable", x, y)
			}
		}
	}
}

func TestParticleXStaysOnScreen(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := particleX(i, 1280)
		if x < 0 || x >= 1280 {
			t.Fatalf("particle %d off screen at x=%d", i, x)
		}
	}
	if particleX(3, 0) != 0 {
		t.Fatalf("zero-width screen must pin particles at 0")
	}
}
