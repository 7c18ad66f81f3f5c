package game

import "testing"

func TestSeedInventoryPreservesAcquisitionOrder(t *testing.T) {
	p := NewProgression(0)
	p.AddSeeds("Carrot", 2)
	p.AddSeeds("Radish", 1)
	p.AddSeeds("Carrot", 1)

	first, ok := p.FirstSeed()
	if !ok || first != "Carrot" {
		t.Fatalf("first seed should be the earliest acquired, got %q", first)
	}

	for i := 0; i < 3; i++ {
		if !p.UseSeed("Carrot") {
			t.Fatalf("use %d of Carrot failed", i+1)
		}
	}
	if p.SeedCount("Carrot") != 0 {
		t.Fatalf("expected Carrot depleted, got %d", p.SeedCount("Carrot"))
	}
	if first, _ := p.FirstSeed(); first != "Radish" {
		t.Fatalf("after depleting Carrot the first seed should be Radish, got %q", first)
	}
	if p.UseSeed("Carrot") {
		t.Fatalf("using a depleted seed must fail")
	}
}

func TestInventoryEntriesDropAtZero(t *testing.T) {
	p := NewProgression(0)
	p.AddItem("Tomato", 2)
	if !p.RemoveItems("Tomato", 2) {
		t.Fatalf("removing the full quantity should succeed")
	}
	if entries := p.ItemInventory(); len(entries) != 0 {
		t.Fatalf("inventory should be empty after removal, got %v", entries)
	}
	if p.RemoveItems("Tomato", 1) {
		t.Fatalf("removing from an empty entry must fail")
	}
}

func TestRemoveItemsIsAllOrNothing(t *testing.T) {
	p := NewProgression(0)
	p.AddItem("Corn", 3)
	if p.RemoveItems("Corn", 5) {
		t.Fatalf("partial removal must not be allowed")
	}
	if p.ItemCount("Corn") != 3 {
		t.Fatalf("failed removal must not mutate, got %d", p.ItemCount("Corn"))
	}
}

func TestToolTierTables(t *testing.T) {
	p := NewProgression(0)
	if p.FertilizerMultiplier() != 1.0 || p.PlantingRange() != 2 || p.HarvestRange() != 1 {
		t.Fatalf("basic tier values wrong: fert=%.1f plant=%d harvest=%d",
			p.FertilizerMultiplier(), p.PlantingRange(), p.HarvestRange())
	}
	p.FertilizerTier, p.HoeTier, p.ShovelTier = 3, 3, 3
	if p.FertilizerMultiplier() != 100.0 || p.PlantingRange() != 100 || p.HarvestRange() != 15 {
		t.Fatalf("diamond tier values wrong: fert=%.1f plant=%d harvest=%d",
			p.FertilizerMultiplier(), p.PlantingRange(), p.HarvestRange())
	}
}
