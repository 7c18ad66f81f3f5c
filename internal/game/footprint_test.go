package game

import "testing"

func tileSet(tiles []TileCoord) map[TileCoord]bool {
	set := make(map[TileCoord]bool, len(tiles))
	for _, tile := range tiles {
		set[tile] = true
	}
	return set
}

func TestRectFootprintCoversFullBox(t *testing.T) {
	cases := []struct {
		w, h int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 4},
	}
	for _, tc := range cases {
		fp := Footprint{Width: tc.w, Height: tc.h, Shape: ShapeRect}
		tiles := fp.OccupiedTiles(TileCoord{10, 10})
		if len(tiles) != tc.w*tc.h {
			t.Fatalf("rect %dx%d: got %d tiles, want %d", tc.w, tc.h, len(tiles), tc.w*tc.h)
		}
		set := tileSet(tiles)
		for dy := 0; dy < tc.h; dy++ {
			for dx := 0; dx < tc.w; dx++ {
				if !set[TileCoord{10 + dx, 10 + dy}] {
					t.Fatalf("rect %dx%d missing tile (+%d,+%d)", tc.w, tc.h, dx, dy)
				}
			}
		}
	}
}

func TestCircleFootprintUsesInclusiveSquaredDistance(t *testing.T) {
	fp := Footprint{Width: 4, Height: 4, Shape: ShapeCircle}
	tiles := fp.OccupiedTiles(TileCoord{0, 0})
	// Box (4,4) gives integer radius 2; the inclusive squared-distance rule
	// admits 13 cells.
	if len(tiles) != 13 {
		t.Fatalf("circle in 4x4 box: got %d tiles, want 13", len(tiles))
	}
	set := tileSet(tiles)
	center := TileCoord{2, 2}
	if !set[center] {
		t.Fatalf("circle must include its center %v", center)
	}
	if !set[TileCoord{0, 2}] || !set[TileCoord{4, 2}] {
		t.Fatalf("circle radius 2 must include tiles exactly 2 away on an axis")
	}
	if set[TileCoord{0, 0}] {
		t.Fatalf("circle must exclude the box corner at squared distance 8")
	}

	one := Footprint{Width: 3, Height: 3, Shape: ShapeCircle}
	if got := len(one.OccupiedTiles(TileCoord{0, 0})); got != 5 {
		t.Fatalf("circle in 3x3 box: got %d tiles, want 5", got)
	}
}

func TestStarFootprintIsTheFixedSevenCellPattern(t *testing.T) {
	fp := Footprint{Width: 3, Height: 3, Shape: ShapeStar}
	tiles := fp.OccupiedTiles(TileCoord{20, 30})
	if len(tiles) != 7 {
		t.Fatalf("star: got %d tiles, want 7", len(tiles))
	}
	want := []TileCoord{
		{21, 30},
		{20, 31}, {22, 31},
		{20, 32}, {22, 32},
		{21, 31}, {21, 32},
	}
	set := tileSet(tiles)
	for _, tile := range want {
		if !set[tile] {
			t.Fatalf("star missing tile %v", tile)
		}
	}
}

func TestCurvedFootprintDropsTheFourCorners(t *testing.T) {
	cases := []struct {
		w, h int
	}{
		{3, 3}, {4, 4}, {4, 3},
	}
	for _, tc := range cases {
		fp := Footprint{Width: tc.w, Height: tc.h, Shape: ShapeCurved}
		tiles := fp.OccupiedTiles(TileCoord{0, 0})
		if len(tiles) != tc.w*tc.h-4 {
			t.Fatalf("curved %dx%d: got %d tiles, want %d", tc.w, tc.h, len(tiles), tc.w*tc.h-4)
		}
		set := tileSet(tiles)
		corners := []TileCoord{{0, 0}, {tc.w - 1, 0}, {0, tc.h - 1}, {tc.w - 1, tc.h - 1}}
		for _, corner := range corners {
			if set[corner] {
				t.Fatalf("curved %dx%d must exclude corner %v", tc.w, tc.h, corner)
			}
		}
	}
}
