package dice

import "math/rand/v2"

// Source supplies individual die rolls. Roll returns a uniform value in
// [1, sides]. Implementations are not required to be safe for concurrent
// use; callers rolling from multiple goroutines should give each its own
// Source.
type Source interface {
	Roll(sides int) int
}

// RandSource draws rolls from a PCG generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a Source seeded from OS entropy.
func NewRandSource() *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a Source with a fixed seed. Identical seeds produce
// identical roll sequences, which is what makes deterministic results
// cacheable.
func NewSeededSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

func (s *RandSource) Roll(sides int) int {
	return s.rng.IntN(sides) + 1
}

// ScriptedSource replays a fixed sequence of outcomes, cycling when
// exhausted. It ignores the requested sides, so scripts must stay within
// range for the expression under test.
type ScriptedSource struct {
	values []int
	next   int
}

// NewScriptedSource returns a Source replaying values in order.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Roll(sides int) int {
	if len(s.values) == 0 {
		return 1
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
