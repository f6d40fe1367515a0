package hit

import (
	"slices"

	"github.com/4chain-ag/go-hit-simulator/pkg/satoshi"
)

// SimulateAlternateForm determines whether an alternate form transaction spending spend is possible.
//
// Two rounds are run. Each round takes values from the front of the list until they cover spend,
// then adds a spend output and, when the taken values exceed spend, a change output for the excess.
// The values slice is not modified.
//
// Returns ErrNotEnoughFunds if either round runs out of values.
func (m *Matcher) SimulateAlternateForm(values []int64, spend int64) (Form, error) {
	if err := checkAmounts(values, spend); err != nil {
		return Form{}, err
	}

	if 2*spend > satoshi.Sum(values) {
		m.logger.Debugf("Not enough funds for alternative form for this transaction.")
		return Form{}, ErrNotEnoughFunds
	}

	pool := slices.Clone(values)
	form := Form{Kind: FormAlternate}
	for range 2 {
		var ok bool
		pool, ok = alternateRound(pool, &form, spend)
		if !ok {
			m.logger.Debugf("Not enough funds for alternative form for this transaction.")
			return Form{}, ErrNotEnoughFunds
		}
	}

	m.logForm(form)
	return form, nil
}

// alternateRound adds the smallest run of leading values covering spend to the form's inputs,
// along with a spend output and an optional change output. It returns the values left over.
func alternateRound(pool []int64, form *Form, spend int64) ([]int64, bool) {
	if satoshi.Sum(pool) < spend {
		return pool, false
	}

	var taken int64
	for taken < spend {
		taken += pool[0]
		form.Inputs = append(form.Inputs, pool[0])
		pool = pool[1:]
	}

	form.Outputs = append(form.Outputs, spend)
	if change := taken - spend; change > 0 {
		form.Outputs = append(form.Outputs, change)
	}
	return pool, true
}
