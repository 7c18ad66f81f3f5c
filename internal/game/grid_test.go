package game

import "testing"

func TestGridGenerationIsDeterministic(t *testing.T) {
	a := NewGrid(150, 150)
	b := NewGrid(150, 150)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Kind(x, y) != b.Kind(x, y) {
				t.Fatalf("grid generation diverged at (%d,%d): %s vs %s", x, y, a.Kind(x, y), b.Kind(x, y))
			}
		}
	}
}

func TestGridPredicatesMatchKinds(t *testing.T) {
	g := NewGrid(150, 150)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			kind := g.Kind(x, y)
			if g.IsWalkable(x, y) != (kind != TileWater) {
				t.Fatalf("walkable mismatch at (%d,%d) kind=%s", x, y, kind)
			}
			wantTillable := kind == TileSoil || kind == TileGrass
			if g.IsTillable(x, y) != wantTillable {
				t.Fatalf("tillable mismatch at (%d,%d) kind=%s", x, y, kind)
			}
		}
	}
}

func TestGridWaterBorderAndSellArea(t *testing.T) {
	g := NewGrid(150, 150)
	for x := 0; x < g.Width; x++ {
		if g.Kind(x, 0) != TileWater || g.Kind(x, g.Height-1) != TileWater {
			t.Fatalf("expected water border on row edge at x=%d", x)
		}
		if g.Kind(x, 7) != TileWater {
			t.Fatalf("expected 8-tile water border, got %s at (%d,7)", g.Kind(x, 7), x)
		}
	}

	cx, cy := g.SellAreaCenter()
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if !g.IsSellArea(cx+dx, cy+dy) {
				t.Fatalf("expected sell area at (%d,%d)", cx+dx, cy+dy)
			}
		}
	}
	if g.IsSellArea(cx+3, cy) {
		t.Fatalf("sell area should span only 5x5 around center")
	}
}

func TestGridOutOfBoundsReadsFailClosed(t *testing.T) {
	g := NewGrid(150, 150)
	cases := []TileCoord{{-1, 0}, {0, -1}, {150, 0}, {0, 150}, {-5, -5}}
	for _, c := range cases {
		if g.IsWalkable(c.X, c.Y) {
			t.Fatalf("out-of-bounds (%d,%d) must not be walkable", c.X, c.Y)
		}
		if g.IsTillable(c.X, c.Y) {
			t.Fatalf("out-of-bounds (%d,%d) must not be tillable", c.X, c.Y)
		}
		if g.Kind(c.X, c.Y) != TileWater {
			t.Fatalf("out-of-bounds (%d,%d) should read as water", c.X, c.Y)
		}
	}
}
