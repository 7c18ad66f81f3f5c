package game

import "fmt"

// CommandResult is the outcome of a player-triggered transaction. Failed
// transactions carry a display reason and mutate nothing.
type CommandResult struct {
	OK     bool
	Reason string
}

func commandOK() CommandResult {
	return CommandResult{OK: true}
}

func commandFailf(format string, args ...any) CommandResult {
	return CommandResult{Reason: fmt.Sprintf(format, args...)}
}

const noticeDuration = 3.0

// World wires the grid, catalog, field, progression and environment into
// the single surface the front end talks to. One mutator, no locking:
// everything changes inside Step or a command call on the frame goroutine.
type World struct {
	Config   WorldConfig
	Grid     *Grid
	Catalog  *Catalog
	Field    *Field
	Player   *Player
	Progress *Progression
	Weather  *Weather
	DayNight *DayNight

	notice      string
	noticeTimer float64
}

func NewWorld(config WorldConfig) (*World, error) {
	resolved := config.withDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(resolved.Seed)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(resolved.MapWidth, resolved.MapHeight)
	return &World{
		Config:   resolved,
		Grid:     grid,
		Catalog:  catalog,
		Field:    NewField(grid, resolved.Seed),
		Player:   NewPlayer(grid),
		Progress: NewProgression(resolved.StartingMoney),
		Weather:  NewWeather(resolved.Seed),
		DayNight: NewDayNight(resolved.DayLengthSeconds),
	}, nil
}

// Step advances the whole simulation by dt seconds of wall-clock time: the
// advisory timer, weather, the day cycle, and every live cultivar. This is
// the sole entry point that consumes time.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	if w.noticeTimer > 0 {
		w.noticeTimer -= dt
		if w.noticeTimer <= 0 {
			w.notice = ""
		}
	}

	w.Weather.Update(dt)
	w.DayNight.Update(dt)

	weatherMult := w.Weather.GrowthMultiplier()
	fertilizerMult := w.Progress.FertilizerMultiplier()
	for _, cultivar := range w.Field.Live() {
		tile := w.Grid.Kind(cultivar.Origin.X, cultivar.Origin.Y)
		cultivar.Advance(dt, weatherMult, fertilizerMult, tile)
	}
}

// MovePlayer applies one frame of movement input.
func (w *World) MovePlayer(dt float64, input MoveInput) {
	w.Player.Move(dt, input, w.Grid)
}

// PlantAtPlayer plants the first seed type in inventory at the nearest valid
// spot within hoe range of the player's tile.
func (w *World) PlantAtPlayer() CommandResult {
	seedName, ok := w.Progress.FirstSeed()
	if !ok {
		return w.fail(commandFailf("No seeds in inventory!"))
	}
	plantType, ok := w.Catalog.Lookup(seedName)
	if !ok {
		// Seeds only enter inventory through Buy, so this is corruption.
		return w.fail(commandFailf("Unknown seed type %q", seedName))
	}

	origin, found := w.Field.FindPlantingSpot(w.Player.Tile(), plantType.Footprint, w.Progress.PlantingRange())
	if !found {
		return w.fail(commandFailf("Not enough space to place that seed here"))
	}

	w.Field.Place(plantType, origin)
	w.Progress.UseSeed(seedName)
	return commandOK()
}

// HarvestAtPlayer collects every harvestable plant within shovel range.
func (w *World) HarvestAtPlayer() CommandResult {
	harvested := w.Field.HarvestWithin(w.Player.Tile(), w.Progress.HarvestRange())
	if len(harvested) == 0 {
		return w.fail(commandFailf("Nothing ready to harvest in range"))
	}
	for _, plantType := range harvested {
		w.Progress.AddItem(plantType.Name, 1)
	}
	return commandOK()
}

// Buy purchases quantity seeds of the named item, or a tool upgrade.
// Tool tiers must be bought strictly in order and quantity is ignored for
// them; there is no partial purchase.
func (w *World) Buy(name string, quantity int) CommandResult {
	entry, ok := w.Catalog.Lookup(name)
	if !ok {
		return w.fail(w.unknownItem(name))
	}
	if entry.IsTool() {
		return w.buyTool(entry)
	}

	if quantity < 1 {
		quantity = 1
	}
	cost := entry.SeedCost * float64(quantity)
	if w.Progress.Wallet < cost {
		return w.fail(commandFailf("Not enough money! Need $%s", FormatMoney(cost)))
	}
	w.Progress.Wallet -= cost
	w.Progress.AddSeeds(entry.Name, quantity)
	return commandOK()
}

func (w *World) buyTool(entry *PlantType) CommandResult {
	tier := w.Progress.toolTier(entry.Tool.Kind)
	switch {
	case *tier >= entry.Tool.Level:
		return w.fail(commandFailf("%s already owned", entry.Name))
	case *tier != entry.Tool.Level-1:
		return w.fail(commandFailf("%s requires the %s tier first", entry.Name, ToolTierName(entry.Tool.Level-1)))
	case w.Progress.Wallet < entry.SeedCost:
		return w.fail(commandFailf("Not enough money! Need $%s", FormatMoney(entry.SeedCost)))
	}
	w.Progress.Wallet -= entry.SeedCost
	*tier = entry.Tool.Level
	return commandOK()
}

// Sell trades quantity harvested items for money. Only valid while the
// player stands in the sell area.
func (w *World) Sell(name string, quantity int) CommandResult {
	if !w.playerInSellArea() {
		return w.fail(commandFailf("Stand in the golden sell area to sell"))
	}
	entry, ok := w.Catalog.Lookup(name)
	if !ok {
		return w.fail(w.unknownItem(name))
	}
	if quantity < 1 {
		quantity = 1
	}
	if !w.Progress.RemoveItems(entry.Name, quantity) {
		return w.fail(commandFailf("Not enough %s to sell", entry.Name))
	}
	w.Progress.Wallet += entry.SellValue * float64(quantity)
	return commandOK()
}

// SellAll sells every harvested item. Iterates a snapshot of holdings, so
// the removals during the loop cannot disturb the iteration.
func (w *World) SellAll() (float64, CommandResult) {
	if !w.playerInSellArea() {
		return 0, w.fail(commandFailf("Stand in the golden sell area to sell"))
	}
	total := 0.0
	for _, holding := range w.Progress.ItemInventory() {
		entry, ok := w.Catalog.Lookup(holding.Name)
		if !ok {
			continue
		}
		if w.Progress.RemoveItems(holding.Name, holding.Quantity) {
			total += entry.SellValue * float64(holding.Quantity)
		}
	}
	if total == 0 {
		return 0, w.fail(commandFailf("Nothing to sell"))
	}
	w.Progress.Wallet += total
	w.ShowNotice(fmt.Sprintf("Sold all items for $%s!", FormatMoney(total)))
	return total, commandOK()
}

func (w *World) unknownItem(name string) CommandResult {
	if suggestion, ok := w.Catalog.ClosestName(name); ok {
		return commandFailf("Unknown item %q (did you mean %q?)", name, suggestion)
	}
	return commandFailf("Unknown item %q", name)
}

func (w *World) playerInSellArea() bool {
	tile := w.Player.Tile()
	return w.Grid.IsSellArea(tile.X, tile.Y)
}

// fail records the advisory for the HUD and passes the result through.
func (w *World) fail(result CommandResult) CommandResult {
	w.ShowNotice(result.Reason)
	return result
}

// ShowNotice displays a short-lived advisory message.
func (w *World) ShowNotice(message string) {
	w.notice = message
	w.noticeTimer = noticeDuration
}

// Notice is the active advisory message, empty once expired.
func (w *World) Notice() string {
	return w.notice
}

// TotalGrowthMultiplier is the combined buff for a given tile, for display.
func (w *World) TotalGrowthMultiplier(tile TileCoord) float64 {
	soil := 1.0
	if w.Grid.Kind(tile.X, tile.Y) == TileSoil {
		soil = soilGrowthBonus
	}
	return w.Weather.GrowthMultiplier() * w.Progress.FertilizerMultiplier() * soil
}

func FormatMoney(amount float64) string {
	if amount < 10 {
		return fmt.Sprintf("%.2f", amount)
	}
	return addThousandsSeparators(fmt.Sprintf("%.0f", amount))
}

func addThousandsSeparators(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	out := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
