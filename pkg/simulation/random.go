package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/satoshi"
)

// ErrInvalidConfig is returned for simulation settings that cannot produce a wallet.
var ErrInvalidConfig = errors.New("invalid simulation config")

// RandomConfig holds the settings of the random wallet simulation.
type RandomConfig struct {
	// Tests is the number of random wallets evaluated.
	Tests int `mapstructure:"tests"`

	// MaxUTXOs bounds the number of values per wallet; each wallet holds between 1 and MaxUTXOs.
	MaxUTXOs int `mapstructure:"max_utxos"`

	// MinValue and MaxValue bound every generated value, inclusive.
	MinValue int64 `mapstructure:"min_value"`
	MaxValue int64 `mapstructure:"max_value"`

	// Seed makes runs reproducible. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// DefaultRandomConfig matches the proposal's original experiment.
var DefaultRandomConfig = RandomConfig{
	Tests:    10000,
	MaxUTXOs: 10,
	MinValue: 1,
	MaxValue: 10,
}

func (c RandomConfig) validate() error {
	if c.Tests < 0 {
		return fmt.Errorf("%w: tests must not be negative", ErrInvalidConfig)
	}
	if c.MaxUTXOs < 1 {
		return fmt.Errorf("%w: max_utxos must be at least 1", ErrInvalidConfig)
	}
	if c.MinValue < 1 || c.MaxValue < c.MinValue {
		return fmt.Errorf("%w: values must satisfy 1 <= min_value <= max_value", ErrInvalidConfig)
	}
	return nil
}

// RandomSimulator evaluates HIT compliance for randomly generated wallets and spends.
type RandomSimulator struct {
	cfg     RandomConfig
	matcher *hit.Matcher
	rng     *rand.Rand
	logger  logging.Logger
}

// NewRandomSimulator validates cfg and creates a RandomSimulator.
func NewRandomSimulator(cfg RandomConfig, matcher *hit.Matcher, logger logging.Logger) (*RandomSimulator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if matcher == nil {
		matcher = hit.NewMatcher()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &RandomSimulator{
		cfg:     cfg,
		matcher: matcher,
		rng:     rand.New(rand.NewPCG(seed, seed)),
		logger:  logger,
	}, nil
}

// Run evaluates cfg.Tests random wallets and tallies the outcomes. It stops early when ctx is done.
func (s *RandomSimulator) Run(ctx context.Context) (Tally, error) {
	var tally Tally
	for i := range s.cfg.Tests {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		s.logger.Debugf("Beginning test %d of %d", i+1, s.cfg.Tests)

		values := s.generateValues()
		sum := satoshi.Sum(values)
		spend := 1 + s.rng.Int64N(sum)
		s.logger.Infof("Available UTXOs: %v sum=%d", values, sum)
		s.logger.Infof("Desired Spend: %d", spend)

		outcome, err := Evaluate(s.matcher, values, spend)
		if err != nil {
			return tally, err
		}
		if !outcome.Standard {
			s.logger.Infof("Not enough funds for standard form.")
		}
		if !outcome.Alternate {
			s.logger.Infof("Not enough funds for alternate form.")
		}
		tally.Record(outcome)
	}

	s.logger.Infof("In %d tests: %d compatible with both, %d standard only, %d alternate only, %d neither.",
		s.cfg.Tests, tally.Both, tally.StandardOnly, tally.AlternateOnly, tally.Neither)
	return tally, nil
}

// generateValues returns between 1 and MaxUTXOs values, largest first.
func (s *RandomSimulator) generateValues() []int64 {
	n := 1 + s.rng.IntN(s.cfg.MaxUTXOs)
	values := make([]int64, n)
	for i := range values {
		values[i] = s.cfg.MinValue + s.rng.Int64N(s.cfg.MaxValue-s.cfg.MinValue+1)
	}
	slices.Sort(values)
	slices.Reverse(values)
	return values
}
