package game

import "math"

type TileKind uint8

const (
	TileWater TileKind = iota
	TileSoil
	TileGrass
	TileStone
	TileSellArea
)

func (k TileKind) String() string {
	switch k {
	case TileWater:
		return "water"
	case TileSoil:
		return "soil"
	case TileGrass:
		return "grass"
	case TileStone:
		return "stone"
	case TileSellArea:
		return "sell_area"
	default:
		return "unknown"
	}
}

const (
	waterBorderTiles = 8
	sellAreaHalfSpan = 2
)

// Grid is the static terrain. Generation is a pure function of the
// dimensions, so the same size always yields the same world.
type Grid struct {
	Width  int
	Height int
	tiles  []TileKind
}

func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]TileKind, width*height),
	}
	centerX, centerY := width/2, height/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[y*width+x] = generateTile(x, y, width, height, centerX, centerY)
		}
	}
	return g
}

func generateTile(x, y, width, height, centerX, centerY int) TileKind {
	if x < waterBorderTiles || x >= width-waterBorderTiles ||
		y < waterBorderTiles || y >= height-waterBorderTiles {
		return TileWater
	}
	if abs(x-centerX) <= sellAreaHalfSpan && abs(y-centerY) <= sellAreaHalfSpan {
		return TileSellArea
	}
	noise := (math.Sin(float64(x)*0.1) + math.Cos(float64(y)*0.1) +
		math.Sin(float64(x)*0.05+float64(y)*0.05)) / 3
	switch {
	case noise < -0.3:
		return TileWater
	case noise < 0.1:
		return TileSoil
	case noise < 0.5:
		return TileGrass
	default:
		return TileStone
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Kind reports the tile at (x, y). Out-of-bounds coordinates read as water
// so every derived predicate fails closed instead of panicking.
func (g *Grid) Kind(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileWater
	}
	return g.tiles[y*g.Width+x]
}

func (g *Grid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.Kind(x, y) != TileWater
}

func (g *Grid) IsTillable(x, y int) bool {
	kind := g.Kind(x, y)
	return kind == TileSoil || kind == TileGrass
}

func (g *Grid) IsSellArea(x, y int) bool {
	return g.Kind(x, y) == TileSellArea
}

// SellAreaCenter is the tile at the middle of the golden sell block.
func (g *Grid) SellAreaCenter() (int, int) {
	return g.Width / 2, g.Height / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
