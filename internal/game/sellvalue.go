package game

import "fmt"

// sellValueCosts and sellValueReturns are a parallel lookup spanning $1 to
// $10,000,000 seed cost. Sell prices are tuned per entry, not derived from a
// formula, so the pair of tables is the authority. A couple of costs repeat;
// the later entry wins, matching how the tuning sheet was maintained.
var sellValueCosts = []float64{
	1.00, 2.00, 3.00, 5.00, 8.00, 15.00, 20.00, 25.00, 30.00, 35.00, 40.00, 50.00,
	60.00, 80.00, 100.00, 120.00, 150.00, 180.00, 200.00, 250.00, 280.00, 300.00,
	320.00, 350.00, 380.00, 400.00, 420.00, 450.00, 480.00, 500.00, 500.00, 750.00,
	1000.00, 1250.00, 1500.00, 1750.00, 2000.00, 2250.00, 2500.00, 2750.00, 3000.00,
	3250.00, 3500.00, 3750.00, 4000.00, 4250.00, 4500.00, 4750.00, 5000.00, 5000.00,
	10000.00, 15000.00, 20000.00, 25000.00, 30000.00, 35000.00, 40000.00, 45000.00,
	50000.00, 55000.00, 60000.00, 65000.00, 70000.00, 75000.00, 80000.00, 85000.00,
	90000.00, 95000.00, 100000.00, 200000.00, 1000000.00, 3000000.00, 5000000.00, 10000000.00,
}

var sellValueReturns = []float64{
	1.01, 2.06, 3.10, 6.30, 11.00, 26.00, 32.00, 40.00, 40.00, 55.00, 52.00, 68.00,
	68.00, 120.00, 130.00, 228.00, 250.00, 240.00, 320.00, 411.00, 515.00, 570.00,
	614.00, 676.00, 737.00, 780.00, 882.00, 945.00, 1027.00, 1080.00, 1090.00, 1725.00,
	2350.00, 3063.00, 3720.00, 4393.00, 5000.00, 5648.00, 6425.00, 7233.00, 7950.00,
	8938.00, 9730.00, 10463.00, 11240.00, 11985.00, 12780.00, 13538.00, 14450.00,
	14750.00, 30000.00, 45750.00, 68000.00, 90000.00, 113700.00, 136500.00, 160000.00,
	184500.00, 210000.00, 236500.00, 261000.00, 284050.00, 308000.00, 331500.00,
	355200.00, 379100.00, 403200.00, 427500.00, 451000.00, 1200000.00, 7000000.00,
	25500000.00, 500000000.00, 12000000000.00,
}

var sellValueByCost = buildSellValueTable()

func buildSellValueTable() map[float64]float64 {
	if len(sellValueCosts) != len(sellValueReturns) {
		panic(fmt.Sprintf("sell value tables out of step: %d costs vs %d returns",
			len(sellValueCosts), len(sellValueReturns)))
	}
	table := make(map[float64]float64, len(sellValueCosts))
	for i, cost := range sellValueCosts {
		table[cost] = sellValueReturns[i]
	}
	return table
}

// SellValueForCost resolves a seed cost against the tuning table. Costs that
// are not listed have no defined sell value and must be treated as a catalog
// authoring error by the caller.
func SellValueForCost(seedCost float64) (float64, bool) {
	value, ok := sellValueByCost[seedCost]
	return value, ok
}
