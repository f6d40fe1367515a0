// Package hit checks whether a set of spendable coin values can be arranged into a
// Heterogeneous Input Transaction (HIT), in either standard form or alternate form.
//
// A draft form of the proposal can be found here:
// https://github.com/OpenBitcoinPrivacyProject/rfc/blob/master/bips/obpp-03.mediawiki
package hit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
)

var (
	// ErrNotEnoughFunds is returned when no compliant form exists for the given values and spend.
	ErrNotEnoughFunds = errors.New("not enough funds to match HIT form")

	// ErrInvalidParts is returned when a value cannot be broken into the requested number of positive parts.
	ErrInvalidParts = errors.New("cannot break value into positive parts")

	// ErrNegativeAmount is returned when a spend or an available value is below zero.
	ErrNegativeAmount = errors.New("amounts must not be negative")

	// ErrUnreachableState signals a broken invariant in the standard form reconciliation loop.
	ErrUnreachableState = errors.New("unreachable standard form reconciliation state")
)

// DefaultMaxStandardFormAttempts is the ceiling on candidate amounts tried by SimulateStandardForm.
const DefaultMaxStandardFormAttempts = 1000

// FormKind names the HIT shape a Form was built in.
type FormKind string

const (
	FormStandard  FormKind = "standard"
	FormAlternate FormKind = "alternate"
)

// Form is a constructed transaction shape: the values used as inputs and the values of the outputs.
type Form struct {
	Kind    FormKind `json:"form"`
	Inputs  []int64  `json:"inputs"`
	Outputs []int64  `json:"outputs"`
}

// String renders the form in the layout used by the diagnostic log.
func (f Form) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transaction: %s form\n", f.Kind)
	b.WriteString("\tInputs:\n")
	for _, in := range f.Inputs {
		fmt.Fprintf(&b, "\t\t%d\n", in)
	}
	b.WriteString("\tOutputs:\n")
	for _, out := range f.Outputs {
		fmt.Fprintf(&b, "\t\t%d\n", out)
	}
	return b.String()
}

// Matcher searches for standard and alternate form transactions.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	maxAttempts int
	logger      logging.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxStandardFormAttempts caps the number of candidate amounts SimulateStandardForm tries.
// A value of zero or below disables the cap and every candidate is tried.
func WithMaxStandardFormAttempts(n int) Option {
	return func(m *Matcher) {
		m.maxAttempts = n
	}
}

// WithLogger sets the logger receiving the matcher's diagnostic output.
func WithLogger(l logging.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatcher creates a Matcher with the default attempt ceiling and a discarding logger.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		maxAttempts: DefaultMaxStandardFormAttempts,
		logger:      logging.Discard(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Matcher) logForm(f Form) {
	m.logger.Debugf("%s", f.String())
}

func checkAmounts(values []int64, amounts ...int64) error {
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: value %d", ErrNegativeAmount, v)
		}
	}
	for _, a := range amounts {
		if a < 0 {
			return fmt.Errorf("%w: amount %d", ErrNegativeAmount, a)
		}
	}
	return nil
}
