package testabilities

import (
	"context"
	"errors"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/stretchr/testify/require"
)

// ErrTestNoopOpFailure is a generic failure returned by the provider mocks.
var ErrTestNoopOpFailure = errors.New("noop operation failure")

// WalletSimulationProviderMockExpectations defines the expected behavior and outcomes for a WalletSimulationProviderMock.
type WalletSimulationProviderMockExpectations struct {
	Result             simulation.WalletResult
	Error              error
	SimulateWalletCall bool
	Label              string
}

// WalletSimulationProviderMock is a mock implementation of a wallet simulation provider,
// used for testing the behavior of components that depend on wallet simulation.
type WalletSimulationProviderMock struct {
	t              *testing.T
	expectations   WalletSimulationProviderMockExpectations
	called         bool
	requestedLabel string
}

// SimulateWallet records the call and returns the expected result or error.
func (m *WalletSimulationProviderMock) SimulateWallet(ctx context.Context, label string) (simulation.WalletResult, error) {
	m.t.Helper()
	m.called = true
	m.requestedLabel = label

	if m.expectations.Error != nil {
		return simulation.WalletResult{}, m.expectations.Error
	}
	return m.expectations.Result, nil
}

// AssertCalled verifies that SimulateWallet was called as expected, with the expected label.
func (m *WalletSimulationProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.SimulateWalletCall, m.called, "Discrepancy between expected and actual SimulateWallet call")
	if m.expectations.SimulateWalletCall && m.expectations.Label != "" {
		require.Equal(m.t, m.expectations.Label, m.requestedLabel, "Discrepancy between expected and actual SimulateWallet label")
	}
}

// NewWalletSimulationProviderMock creates a new WalletSimulationProviderMock with the given expectations.
func NewWalletSimulationProviderMock(t *testing.T, expectations WalletSimulationProviderMockExpectations) *WalletSimulationProviderMock {
	return &WalletSimulationProviderMock{
		t:            t,
		expectations: expectations,
	}
}
