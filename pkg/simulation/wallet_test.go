package simulation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/internal/testabilities"
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newWalletSimulator(t *testing.T, cfg simulation.WalletConfig) *simulation.WalletSimulator {
	t.Helper()
	return simulation.NewWalletSimulator(cfg, walletDeps(t), hit.NewMatcher(), &testabilities.LoggerSpy{})
}

func TestWalletSimulator_SimulateWallet(t *testing.T) {
	tests := map[string]struct {
		label    string
		expected simulation.WalletResult
	}{
		"Wallet with an alternate only send and an incompatible send.": {
			label: "W",
			expected: simulation.WalletResult{
				Label:  "W",
				Status: simulation.WalletEvaluated,
				Tally:  simulation.Tally{AlternateOnly: 1, Neither: 1},
			},
		},
		"Wallet with a send compatible with both forms.": {
			label: "V",
			expected: simulation.WalletResult{
				Label:  "V",
				Status: simulation.WalletEvaluated,
				Tally:  simulation.Tally{Both: 1},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			sim := newWalletSimulator(t, simulation.WalletConfig{MaxTxsPerWallet: 6})

			// when:
			res, err := sim.SimulateWallet(context.Background(), tc.label)

			// then:
			require.NoError(t, err)
			require.Equal(t, tc.expected, res)
		})
	}
}

func TestWalletSimulator_SimulateWallet_SkippedAndAborted(t *testing.T) {
	tests := map[string]struct {
		label          string
		expectedStatus simulation.WalletStatus
		expectedErr    error
	}{
		"Wallet unknown to the history provider is skipped.": {
			label:          "Gone",
			expectedStatus: simulation.WalletSkipped,
			expectedErr:    wallet.ErrWalletNotFound,
		},
		"Wallet above the transaction limit is skipped.": {
			label:          "Big",
			expectedStatus: simulation.WalletSkipped,
			expectedErr:    wallet.ErrMaxTransactionsExceeded,
		},
		"Wallet with an unaccountable receive is aborted.": {
			label:          "Broken",
			expectedStatus: simulation.WalletAborted,
			expectedErr:    wallet.ErrOutputNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			sim := newWalletSimulator(t, simulation.WalletConfig{MaxTxsPerWallet: 6})

			// when:
			res, err := sim.SimulateWallet(context.Background(), tc.label)

			// then:
			require.NoError(t, err)
			require.Equal(t, tc.expectedStatus, res.Status)
			require.NotEmpty(t, res.Reason)
			require.ErrorIs(t, res.Err, tc.expectedErr)
			require.Zero(t, res.Tally.Total())
		})
	}
}

func TestWalletSimulator_Run(t *testing.T) {
	// given:
	sim := newWalletSimulator(t, simulation.WalletConfig{MaxTxsPerWallet: 6})
	labels := []string{"W", "V", "Gone", "Broken", "Big"}

	// when:
	report, err := sim.Run(context.Background(), labels)

	// then:
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, report.RunID)
	require.False(t, report.FinishedAt.Before(report.StartedAt))
	require.Len(t, report.Wallets, 5)
	require.Equal(t, 2, report.Skipped)
	require.Equal(t, 1, report.Aborted)
	require.Equal(t, simulation.Tally{Both: 1, AlternateOnly: 1, Neither: 1}, report.Tally)
}

func TestWalletSimulator_Run_MaxWallets(t *testing.T) {
	// given:
	sim := newWalletSimulator(t, simulation.WalletConfig{MaxWallets: 1})

	// when:
	report, err := sim.Run(context.Background(), []string{"V", "W"})

	// then:
	require.NoError(t, err)
	require.Len(t, report.Wallets, 1)
	require.Equal(t, "V", report.Wallets[0].Label)
	require.Equal(t, simulation.Tally{Both: 1}, report.Tally)
}

func TestWalletSimulator_Run_StopsOnUnexpectedError(t *testing.T) {
	// given:
	nodeDown := errors.New("connection refused")
	deps := walletDeps(t)
	deps.Node = testabilities.NewNodeServiceMock(t, testabilities.NodeServiceMockExpectations{Error: nodeDown, DecodedCall: true})
	sim := simulation.NewWalletSimulator(simulation.WalletConfig{}, deps, nil, nil)

	// when:
	report, err := sim.Run(context.Background(), []string{"Gone", "W", "V"})

	// then:
	require.ErrorIs(t, err, nodeDown)
	require.Len(t, report.Wallets, 1)
	require.Equal(t, 1, report.Skipped)
}

func TestWalletSimulator_Run_CancelledContext(t *testing.T) {
	// given:
	sim := newWalletSimulator(t, simulation.WalletConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// when:
	report, err := sim.Run(ctx, []string{"W"})

	// then:
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, report.Wallets)
}

func TestNewWalletSimulator_PanicsOnMissingDependencies(t *testing.T) {
	require.Panics(t, func() {
		simulation.NewWalletSimulator(simulation.WalletConfig{}, wallet.Dependencies{}, nil, nil)
	})
}
