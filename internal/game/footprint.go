package game

// TileCoord addresses a single grid tile.
type TileCoord struct {
	X int
	Y int
}

type FootprintShape string

const (
	ShapeRect   FootprintShape = "rect"
	ShapeCircle FootprintShape = "circle"
	ShapeStar   FootprintShape = "star"
	ShapeCurved FootprintShape = "curved"
)

// Footprint is the bounding box and fill rule for the tiles a plant claims.
// Star footprints are only defined for a 3x3 box; NewCatalog rejects
// anything else, so OccupiedTiles never has to check.
type Footprint struct {
	Width  int
	Height int
	Shape  FootprintShape
}

// starOffsets is the fixed 7-cell pattern for a 3x3 star footprint.
var starOffsets = [7]TileCoord{
	{1, 0},
	{0, 1}, {2, 1},
	{0, 2}, {2, 2},
	{1, 1}, {1, 2},
}

// OccupiedTiles lists every tile a footprint at origin covers. The same
// function backs placement validation, planting and harvest removal, so the
// three can never disagree about what a plant owns.
func (f Footprint) OccupiedTiles(origin TileCoord) []TileCoord {
	switch f.Shape {
	case ShapeCircle:
		return f.circleTiles(origin)
	case ShapeStar:
		tiles := make([]TileCoord, 0, len(starOffsets))
		for _, off := range starOffsets {
			tiles = append(tiles, TileCoord{origin.X + off.X, origin.Y + off.Y})
		}
		return tiles
	case ShapeCurved:
		return f.curvedTiles(origin)
	default:
		tiles := make([]TileCoord, 0, f.Width*f.Height)
		for dy := 0; dy < f.Height; dy++ {
			for dx := 0; dx < f.Width; dx++ {
				tiles = append(tiles, TileCoord{origin.X + dx, origin.Y + dy})
			}
		}
		return tiles
	}
}

func (f Footprint) circleTiles(origin TileCoord) []TileCoord {
	centerX := origin.X + f.Width/2
	centerY := origin.Y + f.Height/2
	radius := min(f.Width, f.Height) / 2
	tiles := make([]TileCoord, 0, f.Width*f.Height)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			// Squared-distance comparison keeps the rule float-free.
			if dx*dx+dy*dy <= radius*radius {
				tiles = append(tiles, TileCoord{centerX + dx, centerY + dy})
			}
		}
	}
	return tiles
}

func (f Footprint) curvedTiles(origin TileCoord) []TileCoord {
	tiles := make([]TileCoord, 0, f.Width*f.Height)
	for dy := 0; dy < f.Height; dy++ {
		for dx := 0; dx < f.Width; dx++ {
			corner := (dx == 0 || dx == f.Width-1) && (dy == 0 || dy == f.Height-1)
			if corner {
				continue
			}
			tiles = append(tiles, TileCoord{origin.X + dx, origin.Y + dy})
		}
	}
	return tiles
}
