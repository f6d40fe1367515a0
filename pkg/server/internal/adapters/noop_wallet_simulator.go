package adapters

import (
	"context"
	"errors"

	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
)

// ErrWalletSimulationDisabled is returned by NoopWalletSimulator for every request.
var ErrWalletSimulationDisabled = errors.New("wallet simulation is not configured on this server")

// NoopWalletSimulator stands in for the wallet simulator when the server runs without wallet data sources.
type NoopWalletSimulator struct{}

// SimulateWallet always fails with ErrWalletSimulationDisabled.
func (NoopWalletSimulator) SimulateWallet(context.Context, string) (simulation.WalletResult, error) {
	return simulation.WalletResult{}, ErrWalletSimulationDisabled
}

// NewNoopWalletSimulator returns a NoopWalletSimulator.
func NewNoopWalletSimulator() *NoopWalletSimulator {
	return &NoopWalletSimulator{}
}
