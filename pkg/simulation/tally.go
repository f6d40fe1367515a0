// Package simulation measures how often spends could have been made as HIT compliant transactions,
// either for randomly generated wallets or for real wallet histories.
package simulation

import (
	"errors"
	"fmt"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
)

// Outcome tells which HIT forms a single spend could have been built in.
type Outcome struct {
	Standard  bool `json:"standard"`
	Alternate bool `json:"alternate"`
}

// Tally counts spends per outcome. The four counters are mutually exclusive.
type Tally struct {
	Both          int `json:"both"`
	StandardOnly  int `json:"standard_only"`
	AlternateOnly int `json:"alternate_only"`
	Neither       int `json:"neither"`
}

// Record counts a single outcome.
func (t *Tally) Record(o Outcome) {
	switch {
	case o.Standard && o.Alternate:
		t.Both++
	case o.Standard:
		t.StandardOnly++
	case o.Alternate:
		t.AlternateOnly++
	default:
		t.Neither++
	}
}

// Add merges other into t.
func (t *Tally) Add(other Tally) {
	t.Both += other.Both
	t.StandardOnly += other.StandardOnly
	t.AlternateOnly += other.AlternateOnly
	t.Neither += other.Neither
}

// Total returns the number of recorded outcomes.
func (t Tally) Total() int {
	return t.Both + t.StandardOnly + t.AlternateOnly + t.Neither
}

func (t Tally) String() string {
	return fmt.Sprintf("Stats: Total txs standard & alternate compliant: %d; standard only: %d; alternate only: %d; neither: %d",
		t.Both, t.StandardOnly, t.AlternateOnly, t.Neither)
}

// Evaluate tries both HIT forms for spending spend out of values.
// Only errors other than hit.ErrNotEnoughFunds are returned.
func Evaluate(m *hit.Matcher, values []int64, spend int64) (Outcome, error) {
	var o Outcome

	_, err := m.SimulateStandardForm(values, spend)
	switch {
	case err == nil:
		o.Standard = true
	case !errors.Is(err, hit.ErrNotEnoughFunds):
		return Outcome{}, fmt.Errorf("standard form simulation failed: %w", err)
	}

	_, err = m.SimulateAlternateForm(values, spend)
	switch {
	case err == nil:
		o.Alternate = true
	case !errors.Is(err, hit.ErrNotEnoughFunds):
		return Outcome{}, fmt.Errorf("alternate form simulation failed: %w", err)
	}

	return o, nil
}
