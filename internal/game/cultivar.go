package game

type GrowthStage int

const (
	StageSeed GrowthStage = iota
	StageSprout
	StageYoung
	StageMature
	StageHarvestable
)

func (s GrowthStage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSprout:
		return "sprout"
	case StageYoung:
		return "young"
	case StageMature:
		return "mature"
	case StageHarvestable:
		return "harvestable"
	default:
		return "unknown"
	}
}

// Growth stage thresholds as progress fractions. Tuned values from the
// original balance pass; kept as literals.
const (
	sproutProgress = 0.2
	youngProgress  = 0.5
	matureProgress = 0.8
)

const soilGrowthBonus = 1.1

// Cultivar is one planted instance of a PlantType, anchored at its origin
// tile. Remaining growth time only ever decreases.
type Cultivar struct {
	Type      *PlantType
	Origin    TileCoord
	Remaining float64
	Stage     GrowthStage
}

func NewCultivar(plantType *PlantType, origin TileCoord) *Cultivar {
	c := &Cultivar{
		Type:      plantType,
		Origin:    origin,
		Remaining: plantType.GrowthDuration,
	}
	c.Stage = c.stageForProgress()
	return c
}

// Harvestable reports whether the plant is fully grown.
func (c *Cultivar) Harvestable() bool {
	return c.Stage == StageHarvestable
}

// OccupiedTiles lists every tile this cultivar claims.
func (c *Cultivar) OccupiedTiles() []TileCoord {
	return c.Type.Footprint.OccupiedTiles(c.Origin)
}

// Progress is the grown fraction in [0, 1].
func (c *Cultivar) Progress() float64 {
	if c.Type.GrowthDuration <= 0 {
		return 1
	}
	return 1 - c.Remaining/c.Type.GrowthDuration
}

// Advance burns dt seconds of growth, scaled by the weather and fertilizer
// multipliers plus the soil bonus for the origin tile. All factors are
// multiplicative; a harvestable plant is frozen and ignores further time.
func (c *Cultivar) Advance(dt, weatherMult, fertilizerMult float64, tile TileKind) {
	if c.Harvestable() || dt <= 0 {
		return
	}
	soilMult := 1.0
	if tile == TileSoil {
		soilMult = soilGrowthBonus
	}
	c.Remaining -= dt * weatherMult * fertilizerMult * soilMult
	if c.Remaining < 0 {
		c.Remaining = 0
	}
	c.Stage = c.stageForProgress()
}

func (c *Cultivar) stageForProgress() GrowthStage {
	if c.Remaining <= 0 {
		return StageHarvestable
	}
	progress := c.Progress()
	switch {
	case progress >= matureProgress:
		return StageMature
	case progress >= youngProgress:
		return StageYoung
	case progress >= sproutProgress:
		return StageSprout
	default:
		return StageSeed
	}
}
