package simulation_test

import (
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := map[string]struct {
		values   []int64
		spend    int64
		expected simulation.Outcome
	}{
		"Both forms possible.": {
			values:   []int64{10, 10, 10, 10, 10},
			spend:    20,
			expected: simulation.Outcome{Standard: true, Alternate: true},
		},
		"Standard form only.": {
			values:   []int64{7, 3, 1},
			spend:    5,
			expected: simulation.Outcome{Standard: true},
		},
		"Alternate form only.": {
			values:   []int64{3, 2},
			spend:    1,
			expected: simulation.Outcome{Alternate: true},
		},
		"Neither form with a single value.": {
			values:   []int64{5},
			spend:    3,
			expected: simulation.Outcome{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// when:
			outcome, err := simulation.Evaluate(hit.NewMatcher(), tc.values, tc.spend)

			// then:
			require.NoError(t, err)
			require.Equal(t, tc.expected, outcome)
		})
	}
}

func TestEvaluate_InvalidAmounts(t *testing.T) {
	// when:
	_, err := simulation.Evaluate(hit.NewMatcher(), []int64{10, 10}, -1)

	// then:
	require.ErrorIs(t, err, hit.ErrNegativeAmount)
}

func TestTally(t *testing.T) {
	// given:
	var tally simulation.Tally
	outcomes := []simulation.Outcome{
		{Standard: true, Alternate: true},
		{Standard: true},
		{Alternate: true},
		{Alternate: true},
		{},
	}

	// when:
	for _, o := range outcomes {
		tally.Record(o)
	}
	tally.Add(simulation.Tally{Both: 2})

	// then:
	require.Equal(t, simulation.Tally{Both: 3, StandardOnly: 1, AlternateOnly: 2, Neither: 1}, tally)
	require.Equal(t, 7, tally.Total())
	require.Equal(t, "Stats: Total txs standard & alternate compliant: 3; standard only: 1; alternate only: 2; neither: 1", tally.String())
}
