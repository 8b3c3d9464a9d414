// Package builder - configuration resolution and sentinel errors.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors returned by constructors.
var (
	// ErrTooFewNodes is returned when a topology needs more nodes than requested.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability is returned for an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNilConstructor is returned when Build receives a nil constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// defaultSeed is the fixed seed used when WithSeed is absent or zero.
const defaultSeed int64 = 1

// config is the resolved, immutable build configuration.
type config struct {
	nameFn   func(i int) string
	idFn     func(i int) int
	weightFn func(rng *rand.Rand) float64
	rng      *rand.Rand
}

// Option configures a build via functional arguments.
type Option func(*settings)

type settings struct {
	seed     int64
	nameFn   func(i int) string
	idFn     func(i int) int
	weightFn func(rng *rand.Rand) float64
}

// WithSeed fixes the random stream used by stochastic constructors and
// weight functions. Seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed }
}

// WithNameFunc overrides node naming (default "p0", "p1", ...).
func WithNameFunc(fn func(i int) string) Option {
	return func(s *settings) {
		if fn != nil {
			s.nameFn = fn
		}
	}
}

// WithIDFunc overrides numeric id assignment (default: the node index).
func WithIDFunc(fn func(i int) int) Option {
	return func(s *settings) {
		if fn != nil {
			s.idFn = fn
		}
	}
}

// WithWeightFunc overrides connection weight generation (default: 1.0).
func WithWeightFunc(fn func(rng *rand.Rand) float64) Option {
	return func(s *settings) {
		if fn != nil {
			s.weightFn = fn
		}
	}
}

// resolve applies options over defaults and freezes the configuration.
func resolve(opts []Option) config {
	s := settings{
		nameFn:   func(i int) string { return fmt.Sprintf("p%d", i) },
		idFn:     func(i int) int { return i },
		weightFn: func(*rand.Rand) float64 { return 1.0 },
	}
	for _, opt := range opts {
		opt(&s)
	}

	seed := s.seed
	if seed == 0 {
		seed = defaultSeed
	}

	return config{
		nameFn:   s.nameFn,
		idFn:     s.idFn,
		weightFn: s.weightFn,
		rng:      rand.New(rand.NewSource(seed)),
	}
}
