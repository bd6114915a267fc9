package service

import "math/rand"

// Per-sync sample bounds for the mock integrations.
const (
	MaxSyncSteps    = 500
	MaxSyncCalories = 50
)

// RandomSource is the production IntegrationSource: a pseudo-random
// step/calorie sample per sync, standing in for a real device integration.
type RandomSource struct {
	rng *rand.Rand
}

var _ IntegrationSource = (*RandomSource)(nil)

// NewRandomSource seeds a private generator so the global one is untouched.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Sample() (int, int) {
	return s.rng.Intn(MaxSyncSteps), s.rng.Intn(MaxSyncCalories)
}

// FixedSource always returns the same sample. Test double for the reactive
// sync pipeline.
type FixedSource struct {
	Steps    int
	Calories int
}

var _ IntegrationSource = (*FixedSource)(nil)

func (s *FixedSource) Sample() (int, int) {
	return s.Steps, s.Calories
}
