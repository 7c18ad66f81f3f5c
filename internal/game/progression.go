package game

// Tool tier tables. Index is the owned tier (0=basic .. 3=diamond).
var (
	fertilizerMultipliers = [4]float64{1.0, 2.0, 10.0, 100.0}
	plantingRanges        = [4]int{2, 8, 20, 100}
	harvestRanges         = [4]int{1, 4, 8, 15}
)

const maxToolTier = 3

var toolTierNames = [4]string{"Basic", "Iron", "Gold", "Diamond"}

func ToolTierName(tier int) string {
	if tier < 0 || tier > maxToolTier {
		return "Unknown"
	}
	return toolTierNames[tier]
}

// Progression is the player's economy: wallet, seed and harvest inventories,
// and the three tool tiers. Inventory maps drop entries at zero quantity;
// the order slices preserve acquisition order, which is what makes "plant
// the first seed you own" deterministic.
type Progression struct {
	Wallet float64

	seeds     map[string]int
	seedOrder []string
	items     map[string]int
	itemOrder []string

	FertilizerTier int
	HoeTier        int
	ShovelTier     int
}

func NewProgression(startingMoney float64) *Progression {
	return &Progression{
		Wallet: startingMoney,
		seeds:  make(map[string]int),
		items:  make(map[string]int),
	}
}

func (p *Progression) FertilizerMultiplier() float64 {
	return fertilizerMultipliers[p.FertilizerTier]
}

// PlantingRange is the hoe's search radius for planting spots, in tiles.
func (p *Progression) PlantingRange() int {
	return plantingRanges[p.HoeTier]
}

// HarvestRange is the shovel's circular harvest radius, in tiles.
func (p *Progression) HarvestRange() int {
	return harvestRanges[p.ShovelTier]
}

func (p *Progression) toolTier(kind ToolKind) *int {
	switch kind {
	case ToolFertilizer:
		return &p.FertilizerTier
	case ToolHoe:
		return &p.HoeTier
	default:
		return &p.ShovelTier
	}
}

func (p *Progression) AddSeeds(name string, quantity int) {
	if quantity <= 0 {
		return
	}
	if _, ok := p.seeds[name]; !ok {
		p.seedOrder = append(p.seedOrder, name)
	}
	p.seeds[name] += quantity
}

// FirstSeed returns the earliest-acquired seed type still in stock.
func (p *Progression) FirstSeed() (string, bool) {
	for _, name := range p.seedOrder {
		if p.seeds[name] > 0 {
			return name, true
		}
	}
	return "", false
}

// UseSeed consumes one seed of the named type.
func (p *Progression) UseSeed(name string) bool {
	if p.seeds[name] <= 0 {
		return false
	}
	p.seeds[name]--
	if p.seeds[name] == 0 {
		delete(p.seeds, name)
		p.seedOrder = removeName(p.seedOrder, name)
	}
	return true
}

func (p *Progression) SeedCount(name string) int {
	return p.seeds[name]
}

func (p *Progression) AddItem(name string, quantity int) {
	if quantity <= 0 {
		return
	}
	if _, ok := p.items[name]; !ok {
		p.itemOrder = append(p.itemOrder, name)
	}
	p.items[name] += quantity
}

// RemoveItems takes quantity of the named harvested item; all or nothing.
func (p *Progression) RemoveItems(name string, quantity int) bool {
	if quantity <= 0 || p.items[name] < quantity {
		return false
	}
	p.items[name] -= quantity
	if p.items[name] == 0 {
		delete(p.items, name)
		p.itemOrder = removeName(p.itemOrder, name)
	}
	return true
}

func (p *Progression) ItemCount(name string) int {
	return p.items[name]
}

// InventoryEntry is a snapshot row for display and sell-all iteration.
type InventoryEntry struct {
	Name     string
	Quantity int
}

// SeedInventory snapshots seed holdings in acquisition order.
func (p *Progression) SeedInventory() []InventoryEntry {
	return snapshotInventory(p.seedOrder, p.seeds)
}

// ItemInventory snapshots harvested holdings in acquisition order. The
// snapshot is detached, so callers may mutate holdings while iterating it.
func (p *Progression) ItemInventory() []InventoryEntry {
	return snapshotInventory(p.itemOrder, p.items)
}

func snapshotInventory(order []string, counts map[string]int) []InventoryEntry {
	out := make([]InventoryEntry, 0, len(order))
	for _, name := range order {
		if counts[name] > 0 {
			out = append(out, InventoryEntry{Name: name, Quantity: counts[name]})
		}
	}
	return out
}

func removeName(names []string, name string) []string {
	for i, candidate := range names {
		if candidate == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}
