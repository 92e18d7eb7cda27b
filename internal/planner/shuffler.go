package planner

import "math/rand"

// Shuffler is the injectable randomness source behind the variety shuffle,
// so tests can substitute a deterministic implementation.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// RandomShuffler shuffles with the shared math/rand source.
type RandomShuffler struct{}

func (RandomShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// SeededShuffler shuffles with a private seeded source, for reproducible
// output.
type SeededShuffler struct {
	rng *rand.Rand
}

func NewSeededShuffler(seed int64) *SeededShuffler {
	return &SeededShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededShuffler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
