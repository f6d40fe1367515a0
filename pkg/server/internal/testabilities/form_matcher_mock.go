package testabilities

import (
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/stretchr/testify/require"
)

// FormMatcherMockExpectations defines the expected behavior and outcomes for a FormMatcherMock.
type FormMatcherMockExpectations struct {
	Form          hit.Form
	Error         error
	StandardCall  bool
	AlternateCall bool
}

// FormMatcherMock is a mock implementation of a form matcher.
type FormMatcherMock struct {
	t               *testing.T
	expectations    FormMatcherMockExpectations
	standardCalled  bool
	alternateCalled bool
}

// SimulateStandardForm records the call and returns the expected form or error.
func (m *FormMatcherMock) SimulateStandardForm(values []int64, spend int64) (hit.Form, error) {
	m.t.Helper()
	m.standardCalled = true
	return m.expectations.Form, m.expectations.Error
}

// SimulateAlternateForm records the call and returns the expected form or error.
func (m *FormMatcherMock) SimulateAlternateForm(values []int64, spend int64) (hit.Form, error) {
	m.t.Helper()
	m.alternateCalled = true
	return m.expectations.Form, m.expectations.Error
}

// AssertCalled verifies that the form searches were called as expected.
func (m *FormMatcherMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.StandardCall, m.standardCalled, "Discrepancy between expected and actual SimulateStandardForm call")
	require.Equal(m.t, m.expectations.AlternateCall, m.alternateCalled, "Discrepancy between expected and actual SimulateAlternateForm call")
}

// NewFormMatcherMock creates a new FormMatcherMock with the given expectations.
func NewFormMatcherMock(t *testing.T, expectations FormMatcherMockExpectations) *FormMatcherMock {
	return &FormMatcherMock{
		t:            t,
		expectations: expectations,
	}
}
