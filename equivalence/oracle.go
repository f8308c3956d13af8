package equivalence

import (
	"math/rand"

	"github.com/arnegreen/mealylearn/mealy"
	oraclepkg "github.com/arnegreen/mealylearn/oracle"
	"github.com/arnegreen/mealylearn/symbol"
)

// defaultSeed is the fixed "zero" seed used when a caller never calls
// WithSeed, mirroring the teacher's seed==0 fallback policy.
const defaultSeed int64 = 1

// DefaultSamples and DefaultMaxLength describe the "fast" budget: spec
// §8 scenario-sized sessions, where every equivalence round should
// return quickly. DefaultSlowSamples and DefaultSlowMaxLength describe a
// cheaper "slow" budget for SULs whose membership queries are
// expensive (spec §9 Open Question — K and L_max are exposed, not
// hardwired).
const (
	DefaultSamples       = 150
	DefaultMaxLength     = 8
	DefaultSlowSamples   = 50
	DefaultSlowMaxLength = 5
)

// Config holds an Oracle's sampling budget and RNG seed.
type Config struct {
	samples   int
	maxLength int
	seed      int64
}

// Option configures an Oracle at construction.
type Option func(*Config)

// WithSamples sets K, the number of random test words drawn per
// equivalence round. Panics if samples is not positive.
func WithSamples(samples int) Option {
	if samples <= 0 {
		panic("equivalence: WithSamples requires samples > 0")
	}
	return func(c *Config) { c.samples = samples }
}

// WithMaxLength sets L_max, the maximum length of a sampled test word.
// Panics if maxLength is not positive.
func WithMaxLength(maxLength int) Option {
	if maxLength <= 0 {
		panic("equivalence: WithMaxLength requires maxLength > 0")
	}
	return func(c *Config) { c.maxLength = maxLength }
}

// WithSeed sets the RNG seed an Oracle derives its sampling stream from.
// Two Oracles built with the same seed and the same Config sample the
// identical sequence of test words.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.seed = seed }
}

func defaultConfig() Config {
	return Config{samples: DefaultSamples, maxLength: DefaultMaxLength, seed: defaultSeed}
}

// Oracle draws random test words and compares a hypothesis's simulated
// response against the underlying system's real response.
type Oracle struct {
	alphabet []symbol.Symbol
	sul      oraclepkg.Oracle
	cfg      Config
	rng      *rand.Rand
}

// New returns an Oracle sampling from alphabet against sul, configured by
// opts over the defaults (DefaultSamples test words of length up to
// DefaultMaxLength, seeded deterministically). Returns ErrEmptyAlphabet
// if alphabet is empty.
func New(alphabet []symbol.Symbol, sul oraclepkg.Oracle, opts ...Option) (*Oracle, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Oracle{
		alphabet: alphabet,
		sul:      sul,
		cfg:      cfg,
		rng:      rngFromSeed(cfg.seed),
	}, nil
}

// DefaultFast returns an Oracle tuned for cheap membership queries: 150
// samples of length up to 8.
func DefaultFast(alphabet []symbol.Symbol, sul oraclepkg.Oracle, opts ...Option) (*Oracle, error) {
	return New(alphabet, sul, append([]Option{WithSamples(DefaultSamples), WithMaxLength(DefaultMaxLength)}, opts...)...)
}

// DefaultSlow returns an Oracle tuned for expensive membership queries: 50
// samples of length up to 5.
func DefaultSlow(alphabet []symbol.Symbol, sul oraclepkg.Oracle, opts ...Option) (*Oracle, error) {
	return New(alphabet, sul, append([]Option{WithSamples(DefaultSlowSamples), WithMaxLength(DefaultSlowMaxLength)}, opts...)...)
}

// FindCounterexample draws up to cfg.samples random words, each of a
// random length in [1, cfg.maxLength], and returns the first one where
// hyp's simulated output diverges from the live SUL's response. Returns
// ok=false if no sample disagrees within the budget.
func (o *Oracle) FindCounterexample(hyp *mealy.Machine) (symbol.Word, bool) {
	for i := 0; i < o.cfg.samples; i++ {
		word := o.randomWord()
		if word.IsEmpty() {
			continue
		}
		if !hyp.Simulate(word).Equal(o.sul.Ask(word)) {
			return word, true
		}
	}
	return symbol.Word{}, false
}

func (o *Oracle) randomWord() symbol.Word {
	length := 1 + o.rng.Intn(o.cfg.maxLength)
	syms := make([]symbol.Symbol, length)
	for i := range syms {
		syms[i] = o.alphabet[o.rng.Intn(len(o.alphabet))]
	}
	return symbol.New(syms...)
}
