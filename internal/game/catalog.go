package game

import (
	"fmt"
	"math/rand/v2"
)

type Tier string

const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierMythic    Tier = "mythic"
	TierLegendary Tier = "legendary"
	TierTool      Tier = "tool"
)

// RGB keeps the sim free of renderer types; the gui converts at the edge.
type RGB struct {
	R, G, B uint8
}

type ToolKind string

const (
	ToolFertilizer ToolKind = "fertilizer"
	ToolHoe        ToolKind = "hoe"
	ToolShovel     ToolKind = "shovel"
)

// ToolSpec marks a catalog entry as a tool upgrade rather than a seed.
// Level is the tier the purchase grants (1=iron, 2=gold, 3=diamond).
type ToolSpec struct {
	Kind  ToolKind
	Level int
}

// PlantType is a static catalog entry. Immutable once the catalog is built.
type PlantType struct {
	Name           string
	Tier           Tier
	SeedCost       float64
	SellValue      float64
	GrowthDuration float64 // seconds
	Color          RGB
	FruitColor     RGB
	Footprint      Footprint
	Tool           *ToolSpec
}

func (p *PlantType) IsTool() bool {
	return p.Tool != nil
}

// Category groups catalog entries for shop display, one page per tier.
type Category struct {
	Name  string
	Color RGB
	Items []string
}

// Catalog holds every plantable and purchasable definition. Built once at
// world start; lookup misses afterward mean the caller has a bad name, never
// a missing definition.
type Catalog struct {
	byName     map[string]*PlantType
	order      []string
	Categories []Category
}

type plantSeed struct {
	name   string
	cost   float64
	growth float64
	color  RGB
	fruit  RGB
	// fixed pins a footprint for entries whose shape matters; everything
	// else draws a size from the tier's pool at build time.
	fixed *Footprint
}

var commonPlantData = []plantSeed{
	{name: "Radish", cost: 1.0, growth: 5, color: RGB{255, 100, 100}, fruit: RGB{255, 100, 100}},
	{name: "Lettuce", cost: 2.0, growth: 6, color: RGB{100, 255, 100}, fruit: RGB{100, 255, 100}},
	{name: "Spinach", cost: 3.0, growth: 4, color: RGB{50, 200, 50}, fruit: RGB{50, 200, 50}},
	{name: "Herbs", cost: 5.0, growth: 7, color: RGB{100, 150, 50}, fruit: RGB{100, 150, 50}},
	{name: "Green Onion", cost: 8.0, growth: 8, color: RGB{200, 255, 200}, fruit: RGB{200, 255, 200}},
	{name: "Carrot", cost: 15.0, growth: 15, color: RGB{255, 140, 0}, fruit: RGB{255, 140, 0}},
	{name: "Tomato", cost: 20.0, growth: 20, color: RGB{255, 0, 0}, fruit: RGB{255, 50, 50}},
	{name: "Potato", cost: 25, growth: 25, color: RGB{160, 82, 45}, fruit: RGB{160, 82, 45}},
	{name: "Corn", cost: 30, growth: 30, color: RGB{255, 255, 0}, fruit: RGB{255, 255, 100}},
	{name: "Broccoli", cost: 35, growth: 35, color: RGB{0, 128, 0}, fruit: RGB{0, 128, 0}},
	{name: "Cabbage", cost: 40, growth: 40, color: RGB{100, 200, 100}, fruit: RGB{100, 200, 100}},
	{name: "Pepper", cost: 50, growth: 45, color: RGB{255, 100, 0}, fruit: RGB{255, 0, 0}},
	{name: "Cucumber", cost: 60, growth: 50, color: RGB{0, 255, 100}, fruit: RGB{0, 255, 100}},
	{name: "Eggplant", cost: 80, growth: 60, color: RGB{128, 0, 128}, fruit: RGB{128, 0, 128}},
	{name: "Sunflower", cost: 100, growth: 70, color: RGB{255, 255, 0}, fruit: RGB{255, 215, 0}},
	{name: "Pumpkin", cost: 120, growth: 80, color: RGB{255, 165, 0}, fruit: RGB{255, 165, 0}},
	{name: "Strawberry", cost: 150, growth: 90, color: RGB{255, 192, 203}, fruit: RGB{255, 0, 100}},
	{name: "Blueberry", cost: 180, growth: 100, color: RGB{100, 149, 237}, fruit: RGB{0, 0, 255}},
	{name: "Apple Tree", cost: 200, growth: 120, color: RGB{139, 69, 19}, fruit: RGB{255, 0, 0}},
	{name: "Orange Tree", cost: 250, growth: 140, color: RGB{139, 69, 19}, fruit: RGB{255, 165, 0}},
	{name: "Cherry Tree", cost: 280, growth: 160, color: RGB{139, 69, 19}, fruit: RGB{255, 20, 147}},
	{name: "Peach Tree", cost: 300, growth: 180, color: RGB{139, 69, 19}, fruit: RGB{255, 218, 185}},
	{name: "Pear Tree", cost: 320, growth: 200, color: RGB{139, 69, 19}, fruit: RGB{255, 255, 0}},
	{name: "Grape Vine", cost: 350, growth: 220, color: RGB{128, 0, 128}, fruit: RGB{148, 0, 211}},
	{name: "Avocado Tree", cost: 380, growth: 240, color: RGB{139, 69, 19}, fruit: RGB{107, 142, 35}},
	{name: "Mango Tree", cost: 400, growth: 260, color: RGB{139, 69, 19}, fruit: RGB{255, 165, 0}},
	{name: "Coconut Palm", cost: 420, growth: 280, color: RGB{139, 69, 19}, fruit: RGB{139, 69, 19}},
	{name: "Lemon Tree", cost: 450, growth: 300, color: RGB{139, 69, 19}, fruit: RGB{255, 255, 0}},
	{name: "Lime Tree", cost: 480, growth: 320, color: RGB{139, 69, 19}, fruit: RGB{0, 255, 0}},
	{name: "Banana Tree", cost: 500, growth: 340, color: RGB{139, 69, 19}, fruit: RGB{255, 255, 0}},
}

var rarePlantData = []plantSeed{
	{name: "Dragon Fruit", cost: 500, growth: 360, color: RGB{255, 20, 147}, fruit: RGB{255, 192, 203}},
	{name: "Golden Apple", cost: 750, growth: 420, color: RGB{255, 215, 0}, fruit: RGB{255, 223, 0}},
	{name: "Rainbow Rose", cost: 1000, growth: 480, color: RGB{255, 105, 180}, fruit: RGB{255, 20, 147},
		fixed: &Footprint{Width: 3, Height: 3, Shape: ShapeStar}},
	{name: "Crystal Lotus", cost: 1250, growth: 540, color: RGB{224, 255, 255}, fruit: RGB{173, 216, 230},
		fixed: &Footprint{Width: 3, Height: 3, Shape: ShapeCircle}},
	{name: "Starfruit", cost: 1500, growth: 600, color: RGB{255, 255, 0}, fruit: RGB{255, 215, 0}},
	{name: "Phoenix Flower", cost: 1750, growth: 660, color: RGB{255, 69, 0}, fruit: RGB{255, 140, 0}},
	{name: "Moonberry", cost: 2000, growth: 720, color: RGB{230, 230, 250}, fruit: RGB{147, 112, 219}},
	{name: "Thunder Melon", cost: 2250, growth: 780, color: RGB{255, 0, 255}, fruit: RGB{138, 43, 226}},
	{name: "Ice Mint", cost: 2500, growth: 840, color: RGB{173, 216, 230}, fruit: RGB{224, 255, 255}},
	{name: "Fire Pepper", cost: 2750, growth: 900, color: RGB{255, 69, 0}, fruit: RGB{255, 0, 0}},
	{name: "Wind Blossom", cost: 3000, growth: 960, color: RGB{144, 238, 144}, fruit: RGB{0, 255, 127}},
	{name: "Solar Orchid", cost: 3250, growth: 1020, color: RGB{255, 215, 0}, fruit: RGB{255, 255, 0}},
	{name: "Storm Lily", cost: 3500, growth: 1080, color: RGB{75, 0, 130}, fruit: RGB{147, 112, 219}},
	{name: "Earth Root", cost: 3750, growth: 1140, color: RGB{139, 69, 19}, fruit: RGB{160, 82, 45}},
	{name: "Void Berry", cost: 4000, growth: 1200, color: RGB{25, 25, 112}, fruit: RGB{72, 61, 139}},
	{name: "Light Sage", cost: 4250, growth: 1260, color: RGB{255, 255, 224}, fruit: RGB{255, 255, 255}},
	{name: "Shadow Thorn", cost: 4500, growth: 1320, color: RGB{47, 79, 79}, fruit: RGB{0, 0, 0}},
	{name: "Time Blossom", cost: 4750, growth: 1380, color: RGB{255, 20, 147}, fruit: RGB{255, 105, 180}},
	{name: "Space Fruit", cost: 5000, growth: 1440, color: RGB{25, 25, 112}, fruit: RGB{65, 105, 225}},
}

var mythicPlantData = []plantSeed{
	{name: "Eternal Fruit", cost: 5000, growth: 1800, color: RGB{255, 215, 0}, fruit: RGB{255, 223, 0}},
	{name: "Mystic Herb", cost: 10000, growth: 2400, color: RGB{138, 43, 226}, fruit: RGB{147, 112, 219}},
	{name: "Cosmic Berry", cost: 15000, growth: 3000, color: RGB{75, 0, 130}, fruit: RGB{123, 104, 238}},
	{name: "Divine Rose", cost: 20000, growth: 3600, color: RGB{255, 20, 147}, fruit: RGB{255, 182, 193}},
	{name: "Celestial Apple", cost: 25000, growth: 4200, color: RGB{255, 215, 0}, fruit: RGB{255, 255, 224}},
	{name: "Quantum Melon", cost: 30000, growth: 4800, color: RGB{0, 255, 255}, fruit: RGB{224, 255, 255}},
	{name: "Infinity Bloom", cost: 35000, growth: 5400, color: RGB{255, 105, 180}, fruit: RGB{255, 20, 147}},
	{name: "Galaxy Grape", cost: 40000, growth: 6000, color: RGB{75, 0, 130}, fruit: RGB{138, 43, 226}},
	{name: "Universe Berry", cost: 45000, growth: 6600, color: RGB{25, 25, 112}, fruit: RGB{72, 61, 139}},
	{name: "Reality Stone Fruit", cost: 50000, growth: 7200, color: RGB{255, 0, 0}, fruit: RGB{220, 20, 60}},
	{name: "Time Crystal Plant", cost: 55000, growth: 7800, color: RGB{173, 216, 230}, fruit: RGB{224, 255, 255}},
	{name: "Power Gem Flower", cost: 60000, growth: 8400, color: RGB{255, 165, 0}, fruit: RGB{255, 215, 0}},
	{name: "Mind Stone Herb", cost: 65000, growth: 9000, color: RGB{138, 43, 226}, fruit: RGB{147, 112, 219}},
	{name: "Soul Stone Berry", cost: 70000, growth: 9600, color: RGB{255, 140, 0}, fruit: RGB{255, 165, 0}},
	{name: "Space Stone Vine", cost: 75000, growth: 10200, color: RGB{0, 0, 255}, fruit: RGB{65, 105, 225}},
	{name: "Dimensional Fruit", cost: 80000, growth: 10800, color: RGB{255, 20, 147}, fruit: RGB{255, 105, 180}},
	{name: "Multiverse Bloom", cost: 85000, growth: 11400, color: RGB{255, 215, 0}, fruit: RGB{255, 255, 0}},
	{name: "Omniversal Plant", cost: 90000, growth: 12000, color: RGB{255, 255, 255}, fruit: RGB{224, 255, 255}},
	{name: "Creator Seed", cost: 95000, growth: 12600, color: RGB{255, 215, 0}, fruit: RGB{255, 223, 0}},
	{name: "God Tier Fruit", cost: 100000, growth: 13200, color: RGB{255, 215, 0}, fruit: RGB{255, 255, 224}},
}

var legendaryPlantData = []plantSeed{
	{name: "World Tree Sapling", cost: 200000, growth: 14400, color: RGB{139, 69, 19}, fruit: RGB{0, 255, 0},
		fixed: &Footprint{Width: 4, Height: 4, Shape: ShapeRect}},
	{name: "Universe Heart", cost: 1000000, growth: 25600, color: RGB{255, 20, 147}, fruit: RGB{255, 105, 180},
		fixed: &Footprint{Width: 4, Height: 4, Shape: ShapeCircle}},
	{name: "Infinity Garden", cost: 3000000, growth: 106800, color: RGB{255, 215, 0}, fruit: RGB{255, 255, 0},
		fixed: &Footprint{Width: 4, Height: 4, Shape: ShapeCurved}},
	{name: "Creation Essence", cost: 5000000, growth: 280000, color: RGB{255, 255, 255}, fruit: RGB{224, 255, 255},
		fixed: &Footprint{Width: 4, Height: 4, Shape: ShapeRect}},
	{name: "Omnipotent Bloom", cost: 10000000, growth: 1900200, color: RGB{255, 215, 0}, fruit: RGB{255, 223, 0},
		fixed: &Footprint{Width: 4, Height: 4, Shape: ShapeCurved}},
}

type toolSeed struct {
	name  string
	cost  float64
	kind  ToolKind
	level int
	color RGB
}

var toolData = []toolSeed{
	{name: "Iron Fertilizer", cost: 10000, kind: ToolFertilizer, level: 1, color: RGB{128, 128, 128}},
	{name: "Gold Fertilizer", cost: 150000, kind: ToolFertilizer, level: 2, color: RGB{255, 215, 0}},
	{name: "Diamond Fertilizer", cost: 2500000, kind: ToolFertilizer, level: 3, color: RGB{185, 242, 255}},
	{name: "Iron Hoe", cost: 5000, kind: ToolHoe, level: 1, color: RGB{128, 128, 128}},
	{name: "Gold Hoe", cost: 50000, kind: ToolHoe, level: 2, color: RGB{255, 215, 0}},
	{name: "Diamond Hoe", cost: 250000, kind: ToolHoe, level: 3, color: RGB{185, 242, 255}},
	{name: "Iron Shovel", cost: 20000, kind: ToolShovel, level: 1, color: RGB{128, 128, 128}},
	{name: "Gold Shovel", cost: 100000, kind: ToolShovel, level: 2, color: RGB{255, 215, 0}},
	{name: "Diamond Shovel", cost: 500000, kind: ToolShovel, level: 3, color: RGB{185, 242, 255}},
}

// Size pools for tiers whose plants vary. Mythic excludes 4x4 on purpose;
// that box belongs to legendaries alone.
var (
	rareSizePool = []Footprint{
		{Width: 3, Height: 3, Shape: ShapeRect},
		{Width: 2, Height: 1, Shape: ShapeRect},
		{Width: 3, Height: 2, Shape: ShapeRect},
		{Width: 3, Height: 1, Shape: ShapeRect},
	}
	mythicSizePool = []Footprint{
		{Width: 1, Height: 1, Shape: ShapeRect},
		{Width: 2, Height: 1, Shape: ShapeRect},
		{Width: 1, Height: 2, Shape: ShapeRect},
		{Width: 2, Height: 2, Shape: ShapeRect},
		{Width: 3, Height: 1, Shape: ShapeRect},
		{Width: 1, Height: 3, Shape: ShapeRect},
		{Width: 3, Height: 3, Shape: ShapeRect},
		{Width: 4, Height: 3, Shape: ShapeRect},
		{Width: 3, Height: 4, Shape: ShapeRect},
	}
	oneByOne = Footprint{Width: 1, Height: 1, Shape: ShapeRect}
)

var tierColors = map[Tier]RGB{
	TierCommon:    {0, 200, 0},
	TierRare:      {0, 100, 255},
	TierMythic:    {255, 0, 0},
	TierLegendary: {255, 215, 0},
	TierTool:      {0, 0, 0},
}

// NewCatalog builds the full item catalog. Variable footprint sizes are drawn
// from the given seed so a world's catalog is stable across its lifetime.
// Any authoring error (cost missing from the sell-value table, star shape on
// a non-3x3 box) is fatal here rather than surfacing mid-game.
func NewCatalog(seed int64) (*Catalog, error) {
	rng := seededRNG(seed, "catalog")
	c := &Catalog{byName: make(map[string]*PlantType)}

	tiers := []struct {
		tier  Tier
		title string
		data  []plantSeed
		pool  []Footprint
	}{
		{TierCommon, "COMMON SEEDS", commonPlantData, nil},
		{TierRare, "RARE SEEDS", rarePlantData, rareSizePool},
		{TierMythic, "MYTHIC SEEDS", mythicPlantData, mythicSizePool},
		{TierLegendary, "LEGENDARY SEEDS", legendaryPlantData, nil},
	}
	for _, t := range tiers {
		category := Category{Name: t.title, Color: tierColors[t.tier]}
		for _, seedData := range t.data {
			plant, err := buildPlantType(t.tier, seedData, t.pool, rng)
			if err != nil {
				return nil, err
			}
			if err := c.add(plant); err != nil {
				return nil, err
			}
			category.Items = append(category.Items, plant.Name)
		}
		c.Categories = append(c.Categories, category)
	}

	toolCategory := Category{Name: "TOOLS", Color: tierColors[TierTool]}
	for _, tool := range toolData {
		plant := &PlantType{
			Name:       tool.name,
			Tier:       TierTool,
			SeedCost:   tool.cost,
			Color:      tool.color,
			FruitColor: tool.color,
			Footprint:  oneByOne,
			Tool:       &ToolSpec{Kind: tool.kind, Level: tool.level},
		}
		if err := c.add(plant); err != nil {
			return nil, err
		}
		toolCategory.Items = append(toolCategory.Items, plant.Name)
	}
	c.Categories = append(c.Categories, toolCategory)

	return c, nil
}

func buildPlantType(tier Tier, data plantSeed, pool []Footprint, rng *rand.Rand) (*PlantType, error) {
	sellValue, ok := SellValueForCost(data.cost)
	if !ok {
		return nil, fmt.Errorf("catalog: %s seed cost $%.2f has no sell value entry", data.name, data.cost)
	}

	footprint := oneByOne
	switch {
	case data.fixed != nil:
		footprint = *data.fixed
	case tier == TierLegendary:
		footprint = Footprint{Width: 4, Height: 4, Shape: ShapeRect}
	case pool != nil:
		footprint = pool[rng.IntN(len(pool))]
	}
	if footprint.Width < 1 || footprint.Height < 1 {
		return nil, fmt.Errorf("catalog: %s has degenerate footprint %dx%d", data.name, footprint.Width, footprint.Height)
	}
	if footprint.Shape == ShapeStar && (footprint.Width != 3 || footprint.Height != 3) {
		return nil, fmt.Errorf("catalog: %s declares a star footprint on a %dx%d box; stars require 3x3",
			data.name, footprint.Width, footprint.Height)
	}

	return &PlantType{
		Name:           data.name,
		Tier:           tier,
		SeedCost:       data.cost,
		SellValue:      sellValue,
		GrowthDuration: data.growth,
		Color:          data.color,
		FruitColor:     data.fruit,
		Footprint:      footprint,
	}, nil
}

func (c *Catalog) add(plant *PlantType) error {
	if _, exists := c.byName[plant.Name]; exists {
		return fmt.Errorf("catalog: duplicate entry %q", plant.Name)
	}
	c.byName[plant.Name] = plant
	c.order = append(c.order, plant.Name)
	return nil
}

// Lookup returns the catalog entry for name, if any.
func (c *Catalog) Lookup(name string) (*PlantType, bool) {
	plant, ok := c.byName[name]
	return plant, ok
}

// Names lists every entry in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}
