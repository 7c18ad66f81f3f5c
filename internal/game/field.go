package game

import "math/rand/v2"

// cultivarHandle identifies one owned cultivar in the field arena. Tiles
// index handles rather than cultivar pointers so a multi-tile plant is one
// owned instance reachable through many keys, and removal can never free the
// same plant twice.
type cultivarHandle uint64

// Field owns every live cultivar and the tile index over their footprints.
// A tile key exists iff a live cultivar's footprint covers it, and no two
// cultivars ever claim the same tile; both are enforced at planting time.
type Field struct {
	grid      *Grid
	arena     map[cultivarHandle]*Cultivar
	byTile    map[TileCoord]cultivarHandle
	next      cultivarHandle
	shuffleRD *rand.Rand
}

func NewField(grid *Grid, seed int64) *Field {
	return &Field{
		grid:      grid,
		arena:     make(map[cultivarHandle]*Cultivar),
		byTile:    make(map[TileCoord]cultivarHandle),
		next:      1,
		shuffleRD: seededRNG(seed, "placement"),
	}
}

// CultivarAt returns the cultivar whose footprint covers the tile, if any.
func (f *Field) CultivarAt(tile TileCoord) (*Cultivar, bool) {
	handle, ok := f.byTile[tile]
	if !ok {
		return nil, false
	}
	return f.arena[handle], true
}

// Live returns all live cultivars, each exactly once.
func (f *Field) Live() []*Cultivar {
	out := make([]*Cultivar, 0, len(f.arena))
	for _, c := range f.arena {
		out = append(out, c)
	}
	return out
}

// CanPlace reports whether a footprint at origin covers only in-bounds,
// tillable, unclaimed tiles.
func (f *Field) CanPlace(origin TileCoord, footprint Footprint) bool {
	for _, tile := range footprint.OccupiedTiles(origin) {
		if !f.grid.InBounds(tile.X, tile.Y) {
			return false
		}
		if !f.grid.IsTillable(tile.X, tile.Y) {
			return false
		}
		if _, claimed := f.byTile[tile]; claimed {
			return false
		}
	}
	return true
}

// Place creates a cultivar at origin and registers its whole footprint.
// The caller must have validated the spot via CanPlace or FindPlantingSpot.
func (f *Field) Place(plantType *PlantType, origin TileCoord) *Cultivar {
	c := NewCultivar(plantType, origin)
	handle := f.next
	f.next++
	f.arena[handle] = c
	for _, tile := range c.OccupiedTiles() {
		f.byTile[tile] = handle
	}
	return c
}

// FindPlantingSpot searches expanding square rings around origin for the
// nearest origin where the footprint fits. Radius 0 is the origin itself;
// radius r is the perimeter of the (2r+1)x(2r+1) box. Candidates within a
// ring are shuffled so repeated planting doesn't pile up in one direction.
func (f *Field) FindPlantingSpot(origin TileCoord, footprint Footprint, maxRadius int) (TileCoord, bool) {
	for radius := 0; radius <= maxRadius; radius++ {
		candidates := ringCandidates(origin, radius)
		f.shuffleRD.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, candidate := range candidates {
			if f.CanPlace(candidate, footprint) {
				return candidate, true
			}
		}
	}
	return TileCoord{}, false
}

func ringCandidates(origin TileCoord, radius int) []TileCoord {
	if radius == 0 {
		return []TileCoord{origin}
	}
	candidates := make([]TileCoord, 0, 8*radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if abs(dx) == radius || abs(dy) == radius {
				candidates = append(candidates, TileCoord{origin.X + dx, origin.Y + dy})
			}
		}
	}
	return candidates
}

// HarvestWithin removes every harvestable cultivar with a footprint tile
// inside the circular radius around center and returns their types, one per
// plant. The range is Euclidean, unlike the square rings used for planting.
// A plant touching several in-range tiles is harvested once.
func (f *Field) HarvestWithin(center TileCoord, radius int) []*PlantType {
	var harvested []*PlantType
	seen := make(map[cultivarHandle]bool)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			tile := TileCoord{center.X + dx, center.Y + dy}
			handle, ok := f.byTile[tile]
			if !ok || seen[handle] {
				continue
			}
			seen[handle] = true
			c := f.arena[handle]
			if !c.Harvestable() {
				continue
			}
			f.remove(handle, c)
			harvested = append(harvested, c.Type)
		}
	}
	return harvested
}

func (f *Field) remove(handle cultivarHandle, c *Cultivar) {
	for _, tile := range c.OccupiedTiles() {
		if f.byTile[tile] == handle {
			delete(f.byTile, tile)
		}
	}
	delete(f.arena, handle)
}

// OccupiedTileCount is the number of claimed tile keys, for diagnostics.
func (f *Field) OccupiedTileCount() int {
	return len(f.byTile)
}
