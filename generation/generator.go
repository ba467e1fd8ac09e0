package generation

import (
	"golang.org/x/exp/rand"

	"hebi/components"
)

// MapGenerator owns the seeded rng that map types draw from. Successive
// Generate calls continue the same random stream. Not safe for concurrent use.
type MapGenerator struct {
	rng  *rand.Rand
	seed uint64
}

// NewMapGenerator creates a generator seeded with seed
func NewMapGenerator(seed uint64) *MapGenerator {
	g := &MapGenerator{}
	g.SetSeed(seed)
	return g
}

// SetSeed restarts the random stream for reproducible maps
func (g *MapGenerator) SetSeed(seed uint64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed of the current random stream
func (g *MapGenerator) Seed() uint64 {
	return g.seed
}

// Generate produces a map from the given type
func (g *MapGenerator) Generate(mapType MapType) *components.MapData {
	return mapType.MapData(g.rng)
}
