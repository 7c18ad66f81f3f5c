package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// seededRNG derives an independent PCG stream per purpose so catalog sizing,
// weather rolls and placement shuffles never consume each other's sequence.
func seededRNG(seed int64, purpose string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, purpose+"/hi"), seedWord(seed, purpose+"/lo")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
