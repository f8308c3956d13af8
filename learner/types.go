package learner

import (
	"log/slog"

	"github.com/arnegreen/mealylearn/equivalence"
)

// DefaultMaxRounds bounds the outer STABILIZING/HYPOTHESIZING/EQUIV_CHECK
// loop (spec §4.6) as a safety net against a misbehaving oracle that
// never converges; a well-formed SUT over a finite alphabet converges
// long before this is reached.
const DefaultMaxRounds = 1000

// Config holds Learn's tunables.
type Config struct {
	logger    *slog.Logger
	maxRounds int
	equivOpts []equivalence.Option
}

// Option configures Learn.
type Option func(*Config)

// WithLogger sets the *slog.Logger Learn reports progress through.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("learner: WithLogger requires a non-nil logger")
	}
	return func(c *Config) { c.logger = logger }
}

// WithMaxRounds overrides DefaultMaxRounds. Panics if rounds is not
// positive.
func WithMaxRounds(rounds int) Option {
	if rounds <= 0 {
		panic("learner: WithMaxRounds requires rounds > 0")
	}
	return func(c *Config) { c.maxRounds = rounds }
}

// WithEquivalenceOptions forwards opts to the equivalence.Oracle Learn
// constructs internally, overriding its sampling budget or RNG seed.
func WithEquivalenceOptions(opts ...equivalence.Option) Option {
	return func(c *Config) { c.equivOpts = append(c.equivOpts, opts...) }
}

func defaultConfig() Config {
	return Config{logger: slog.Default(), maxRounds: DefaultMaxRounds}
}

// Stats reports how a Learn run progressed, for callers that want
// visibility into the fixed point beyond the final machine (spec §8
// scenario 6 — "progress" assertions).
type Stats struct {
	Rounds             int
	ClosednessRepairs  int
	ConsistencyRepairs int
	States             int // state count of the final, minimized machine
}
