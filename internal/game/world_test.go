package game

import (
	"math"
	"strings"
	"testing"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(WorldConfig{
		MapWidth:         64,
		MapHeight:        64,
		Seed:             5,
		DayLengthSeconds: 600,
		StartingMoney:    10,
	})
	if err != nil {
		t.Fatalf("world build failed: %v", err)
	}
	return w
}

// standOnTillable moves the player to the first plantable tile so planting
// commands are not gated by the sell area the player spawns in.
func standOnTillable(t *testing.T, w *World) {
	t.Helper()
	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			if w.Grid.IsTillable(x, y) {
				w.Player.X = float64(x * TileSize)
				w.Player.Y = float64(y * TileSize)
				return
			}
		}
	}
	t.Fatalf("generated map has no tillable tile")
}

func TestNewWorldSpawnsPlayerInSellArea(t *testing.T) {
	w := newTestWorld(t)
	if w.Progress.Wallet != 10 {
		t.Fatalf("starting wallet should be $10, got %.2f", w.Progress.Wallet)
	}
	if !w.playerInSellArea() {
		t.Fatalf("player must spawn on the sell area, tile %v", w.Player.Tile())
	}
}

func TestBuySeedDebitsWalletAndStocksInventory(t *testing.T) {
	w := newTestWorld(t)
	if result := w.Buy("Radish", 3); !result.OK {
		t.Fatalf("affordable purchase failed: %s", result.Reason)
	}
	if w.Progress.Wallet != 7 {
		t.Fatalf("wallet after 3x $1 Radish should be $7, got %.2f", w.Progress.Wallet)
	}
	if w.Progress.SeedCount("Radish") != 3 {
		t.Fatalf("expected 3 Radish seeds, got %d", w.Progress.SeedCount("Radish"))
	}
}

func TestBuyRejectsUnaffordableAndUnknownItems(t *testing.T) {
	w := newTestWorld(t)

	result := w.Buy("Omnipotent Bloom", 1)
	if result.OK {
		t.Fatalf("a $10M seed must be unaffordable on $10")
	}
	if w.Progress.Wallet != 10 {
		t.Fatalf("failed purchase must not touch the wallet, got %.2f", w.Progress.Wallet)
	}

	result = w.Buy("Radsh", 1)
	if result.OK {
		t.Fatalf("unknown item must fail")
	}
	if !strings.Contains(result.Reason, "Radish") {
		t.Fatalf("near-miss name should suggest Radish, got %q", result.Reason)
	}
	if w.Notice() != result.Reason {
		t.Fatalf("failed command must surface its reason as the notice")
	}
}

func TestToolUpgradesAreStrictlyOrdered(t *testing.T) {
	w := newTestWorld(t)
	w.Progress.Wallet = 1000000

	if result := w.Buy("Gold Fertilizer", 1); result.OK {
		t.Fatalf("tier 2 must be locked until tier 1 is owned")
	}
	if result := w.Buy("Iron Fertilizer", 1); !result.OK {
		t.Fatalf("tier 1 purchase failed: %s", result.Reason)
	}
	if w.Progress.FertilizerTier != 1 || w.Progress.Wallet != 990000 {
		t.Fatalf("tier purchase bookkeeping wrong: tier=%d wallet=%.0f",
			w.Progress.FertilizerTier, w.Progress.Wallet)
	}
	if result := w.Buy("Iron Fertilizer", 1); result.OK {
		t.Fatalf("rebuying an owned tier must fail")
	}
	if w.Progress.FertilizerMultiplier() != 2.0 {
		t.Fatalf("iron fertilizer multiplier should be 2x, got %.1f", w.Progress.FertilizerMultiplier())
	}
}

func TestPlantAtPlayerConsumesOneSeed(t *testing.T) {
	w := newTestWorld(t)
	standOnTillable(t, w)
	w.Progress.AddSeeds("Radish", 2)

	if result := w.PlantAtPlayer(); !result.OK {
		t.Fatalf("planting on tillable ground failed: %s", result.Reason)
	}
	if w.Progress.SeedCount("Radish") != 1 {
		t.Fatalf("planting must consume exactly one seed, %d left", w.Progress.SeedCount("Radish"))
	}
	if w.Field.OccupiedTileCount() != 1 {
		t.Fatalf("expected one occupied tile, got %d", w.Field.OccupiedTileCount())
	}
}

func TestPlantAtPlayerWithoutSeedsAdvises(t *testing.T) {
	w := newTestWorld(t)
	standOnTillable(t, w)
	if result := w.PlantAtPlayer(); result.OK || w.Notice() == "" {
		t.Fatalf("planting with an empty seed pouch must fail with a notice")
	}
}

func TestStepGrowsPlantsToHarvest(t *testing.T) {
	w := newTestWorld(t)
	standOnTillable(t, w)
	w.Progress.AddSeeds("Radish", 1)
	if result := w.PlantAtPlayer(); !result.OK {
		t.Fatalf("planting failed: %s", result.Reason)
	}

	// Radish grows in 5s; 8 one-second steps stay well inside the first
	// 85s weather window, so the multiplier holds at 1x or better.
	for i := 0; i < 8; i++ {
		w.Step(1.0)
	}
	if result := w.HarvestAtPlayer(); !result.OK {
		t.Fatalf("harvest after full growth failed: %s", result.Reason)
	}
	if w.Progress.ItemCount("Radish") != 1 {
		t.Fatalf("harvest must yield one item, got %d", w.Progress.ItemCount("Radish"))
	}
	if w.Field.OccupiedTileCount() != 0 {
		t.Fatalf("harvest must clear the field, %d tiles left", w.Field.OccupiedTileCount())
	}
}

func TestHarvestWithNothingReadyAdvises(t *testing.T) {
	w := newTestWorld(t)
	if result := w.HarvestAtPlayer(); result.OK {
		t.Fatalf("harvest with an empty field must fail")
	}
}

func TestSellingRequiresTheSellArea(t *testing.T) {
	w := newTestWorld(t)
	w.Progress.AddItem("Radish", 1)

	standOnTillable(t, w)
	if result := w.Sell("Radish", 1); result.OK {
		t.Fatalf("selling away from the sell area must fail")
	}
	if w.Progress.ItemCount("Radish") != 1 {
		t.Fatalf("failed sale must not consume items")
	}
}

func TestSellAllCreditsEveryHolding(t *testing.T) {
	w := newTestWorld(t)
	w.Progress.AddItem("Radish", 2)
	w.Progress.AddItem("Carrot", 1)

	carrot, _ := w.Catalog.Lookup("Carrot")
	want := 1.01*2 + carrot.SellValue

	total, result := w.SellAll()
	if !result.OK {
		t.Fatalf("sell all failed: %s", result.Reason)
	}
	if total != want {
		t.Fatalf("sell all total: got %.2f, want %.2f", total, want)
	}
	if w.Progress.Wallet != 10+want {
		t.Fatalf("wallet after sell all: got %.2f, want %.2f", w.Progress.Wallet, 10+want)
	}
	if len(w.Progress.ItemInventory()) != 0 {
		t.Fatalf("sell all must empty the item inventory")
	}

	if _, result := w.SellAll(); result.OK {
		t.Fatalf("sell all with nothing held must fail")
	}
}

func TestNoticesExpireAfterThreeSeconds(t *testing.T) {
	w := newTestWorld(t)
	w.ShowNotice("hello")
	w.Step(2.9)
	if w.Notice() != "hello" {
		t.Fatalf("notice expired early")
	}
	w.Step(0.2)
	if w.Notice() != "" {
		t.Fatalf("notice must clear after 3s, got %q", w.Notice())
	}
}

func TestTotalGrowthMultiplierCombinesBuffs(t *testing.T) {
	w := newTestWorld(t)
	w.Weather.Current = WeatherRainy
	w.Progress.FertilizerTier = 2

	var soilTile, grassTile TileCoord
	foundSoil, foundGrass := false, false
	for y := 0; y < w.Grid.Height && !(foundSoil && foundGrass); y++ {
		for x := 0; x < w.Grid.Width; x++ {
			switch w.Grid.Kind(x, y) {
			case TileSoil:
				soilTile, foundSoil = TileCoord{x, y}, true
			case TileGrass:
				grassTile, foundGrass = TileCoord{x, y}, true
			}
		}
	}
	if !foundSoil || !foundGrass {
		t.Fatalf("generated map missing soil or grass")
	}

	if got := w.TotalGrowthMultiplier(grassTile); got != 20.0 {
		t.Fatalf("rain with gold fertilizer on grass: got %.2f, want 20.00", got)
	}
	if got := w.TotalGrowthMultiplier(soilTile); math.Abs(got-22.0) > 1e-9 {
		t.Fatalf("rain with gold fertilizer on soil: got %.2f, want 22.00", got)
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.01, "1.01"},
		{9.99, "9.99"},
		{10, "10"},
		{999, "999"},
		{1090, "1,090"},
		{2500000, "2,500,000"},
		{12000000000, "12,000,000,000"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
