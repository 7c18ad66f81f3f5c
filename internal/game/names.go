package game

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps how far a misspelling may drift before we stop
// suggesting; beyond a third of the name it's a different word.
const maxSuggestDistance = 4

// ClosestName finds the catalog entry nearest to a misspelled item name,
// case-insensitively, for "did you mean" advisories on failed transactions.
func (c *Catalog) ClosestName(input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, name := range c.order {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(name))
		if dist < bestDist {
			best = name
			bestDist = dist
		}
	}
	if best == "" || bestDist > maxSuggestDistance || bestDist > len(best)/3+1 {
		return "", false
	}
	return best, true
}
