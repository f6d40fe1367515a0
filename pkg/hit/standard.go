package hit

import (
	"fmt"
	"slices"

	"github.com/4chain-ag/go-hit-simulator/pkg/satoshi"
)

// SimulateStandardForm determines whether a standard form transaction spending spend is possible
// from the available values. The search doubles candidate amounts from spend up to half the total,
// trying at most the configured number of evenly spaced candidates.
//
// Returns ErrNotEnoughFunds if no candidate produces a standard form.
func (m *Matcher) SimulateStandardForm(values []int64, spend int64) (Form, error) {
	if err := checkAmounts(values, spend); err != nil {
		return Form{}, err
	}

	total := satoshi.Sum(values)
	if len(values) <= 1 || total < 2*spend {
		m.logger.Debugf("Not enough funds for standard form for this transaction.")
		return Form{}, ErrNotEnoughFunds
	}

	maxToDouble := total / 2
	step := int64(1)
	if m.maxAttempts > 0 {
		step = ceilDiv(maxToDouble-spend+1, int64(m.maxAttempts))
	}

	for amount := spend; amount <= maxToDouble; amount += step {
		form, ok, err := m.matchStandard(values, []int64{amount, amount})
		if err != nil {
			return Form{}, err
		}
		if ok {
			m.logForm(form)
			return form, nil
		}
	}

	m.logger.Debugf("Not enough funds for standard form for this transaction.")
	return Form{}, ErrNotEnoughFunds
}

// MatchStandardForm tries to build a standard form transaction whose outputs include every value in required.
//
// This is neither an optimal nor a complete search. The largest unused value is greedily added to the
// inputs to balance inputs against outputs, and outputs are only added when there is a clear candidate.
func (m *Matcher) MatchStandardForm(values []int64, required []int64) (Form, error) {
	if err := checkAmounts(values, required...); err != nil {
		return Form{}, err
	}

	form, ok, err := m.matchStandard(values, required)
	if err != nil {
		return Form{}, err
	}
	if !ok {
		return Form{}, ErrNotEnoughFunds
	}

	m.logForm(form)
	return form, nil
}

// matchStandard reports ok=false when the pool runs dry before inputs and outputs balance.
// A non-nil error is only returned for a broken invariant.
func (m *Matcher) matchStandard(values []int64, required []int64) (Form, bool, error) {
	m.logger.Debugf("Attempting standard form with required outputs %v", required)

	if satoshi.Sum(values) < satoshi.Sum(required) {
		return Form{}, false, nil
	}

	a := newAttempt(values, required)
	for !a.balanced() {
		if !a.coverOutputs() {
			return Form{}, false, nil
		}

		// from here on inSum >= outSum and len(inputs) >= len(outputs)
		var ok bool
		switch {
		case a.balanced():
			ok = true

		case len(a.inputs) == len(a.outputs) && a.inSum > a.outSum:
			ok = a.addLargestInput()

		case len(a.inputs) > len(a.outputs) && a.inSum == a.outSum:
			// no output can be added without breaking the sums
			ok = a.addLargestInput()

		case len(a.inputs) > len(a.outputs) && a.inSum > a.outSum:
			ok = a.addChange()

		default:
			return Form{}, false, fmt.Errorf("%w with inputs=%v and outputs=%v", ErrUnreachableState, a.inputs, a.outputs)
		}

		if !ok {
			return Form{}, false, nil
		}
	}

	return Form{Kind: FormStandard, Inputs: a.inputs, Outputs: a.outputs}, true, nil
}

// attempt is the scratch state of a single standard form match.
type attempt struct {
	pool    []int64 // unused values, largest first
	inputs  []int64
	outputs []int64
	inSum   int64
	outSum  int64
}

func newAttempt(values []int64, required []int64) *attempt {
	pool := slices.Clone(values)
	slices.Sort(pool)
	slices.Reverse(pool)

	return &attempt{
		pool:    pool,
		inputs:  make([]int64, 0, len(pool)),
		outputs: slices.Clone(required),
		outSum:  satoshi.Sum(required),
	}
}

func (a *attempt) balanced() bool {
	return len(a.inputs) == len(a.outputs) && a.inSum == a.outSum
}

func (a *attempt) addLargestInput() bool {
	if len(a.pool) == 0 {
		return false
	}
	v := a.pool[0]
	a.pool = a.pool[1:]
	a.inputs = append(a.inputs, v)
	a.inSum += v
	return true
}

// coverOutputs adds inputs until they match or overtake the outputs in both count and sum.
func (a *attempt) coverOutputs() bool {
	for a.inSum < a.outSum || len(a.inputs) < len(a.outputs) {
		if !a.addLargestInput() {
			return false
		}
	}
	return true
}

func (a *attempt) addOutputs(values ...int64) {
	a.outputs = append(a.outputs, values...)
	a.outSum += satoshi.Sum(values)
}

// addChange closes the gap between inputs and outputs with change outputs, or takes another
// input when every possible change output would be uniquely identifiable.
func (a *attempt) addChange() bool {
	difference := a.inSum - a.outSum
	missing := len(a.inputs) - len(a.outputs)
	outMax := maxValue(a.outputs)

	if missing == 1 {
		if difference > outMax && !slices.Contains(a.outputs, difference) {
			// a lone change output above every other output would stand out
			return a.addLargestInput()
		}
		a.addOutputs(difference)
		return true
	}

	if difference < int64(missing) {
		// change outputs cannot be smaller than one satoshi
		return a.addLargestInput()
	}

	parts, err := BreakIntoParts(difference, missing)
	if err != nil {
		return a.addLargestInput()
	}
	candidate := append(slices.Clone(a.outputs), parts...)
	if countOf(candidate, maxValue(candidate)) >= 2 {
		a.outputs = candidate
		a.outSum += difference
		return true
	}

	if difference >= outMax {
		a.addOutputs(outMax)
	} else {
		a.addOutputs(difference)
	}
	return true
}

// BreakIntoParts splits total into n positive parts that add up to total. The first n-1 parts are
// floor(total/n), at least 1, and the last part absorbs the remainder.
func BreakIntoParts(total int64, n int) ([]int64, error) {
	if n < 1 || total < int64(n) {
		return nil, fmt.Errorf("%w: total=%d parts=%d", ErrInvalidParts, total, n)
	}

	part := max(total/int64(n), 1)
	parts := make([]int64, n)
	var sum int64
	for i := range n - 1 {
		parts[i] = part
		sum += part
	}
	parts[n-1] = total - sum
	return parts, nil
}

func maxValue(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values)
}

func countOf(values []int64, v int64) int {
	n := 0
	for _, x := range values {
		if x == v {
			n++
		}
	}
	return n
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
