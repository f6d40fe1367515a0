package app

import (
	"context"
	"errors"
	"strings"

	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
)

// WalletSimulationProvider replays a wallet history and evaluates its sends.
type WalletSimulationProvider interface {
	SimulateWallet(ctx context.Context, label string) (simulation.WalletResult, error)
}

// WalletSimulationDTO is the evaluation of a single wallet.
type WalletSimulationDTO struct {
	Label  string
	Status string
	Reason string
	Tally  simulation.Tally
}

// WalletSimulationService validates wallet simulation requests and translates their outcome.
type WalletSimulationService struct {
	provider WalletSimulationProvider
}

// SimulateWallet evaluates the wallet labelled label. Unknown wallets yield a not found error and
// wallets above the transaction limit a limit exceeded error. Aborted wallets are a regular result.
func (s *WalletSimulationService) SimulateWallet(ctx context.Context, label string) (*WalletSimulationDTO, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, NewIncorrectInputWithFieldError("label")
	}

	res, err := s.provider.SimulateWallet(ctx, label)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, NewContextCancellationError()
	case err != nil:
		return nil, NewWalletSimulationProviderError(err)
	case errors.Is(res.Err, wallet.ErrWalletNotFound):
		return nil, NewWalletNotFoundError(label, res.Err)
	case errors.Is(res.Err, wallet.ErrMaxTransactionsExceeded):
		return nil, NewWalletTooLargeError(label, res.Err)
	}

	return &WalletSimulationDTO{
		Label:  res.Label,
		Status: string(res.Status),
		Reason: res.Reason,
		Tally:  res.Tally,
	}, nil
}

// NewWalletSimulationService constructs a WalletSimulationService with the given provider.
// Panics if the provider is nil.
func NewWalletSimulationService(provider WalletSimulationProvider) *WalletSimulationService {
	if provider == nil {
		panic("wallet simulation provider is nil")
	}
	return &WalletSimulationService{provider: provider}
}

// NewWalletNotFoundError reports a wallet label unknown to the history provider.
func NewWalletNotFoundError(label string, err error) Error {
	return NewNotFoundError(err.Error(), "Wallet "+label+" is unknown to the history provider.")
}

// NewWalletTooLargeError reports a wallet whose history exceeds the configured transaction limit.
func NewWalletTooLargeError(label string, err error) Error {
	return NewLimitExceededError(err.Error(), "Wallet "+label+" holds more transactions than the simulation accepts.")
}

// NewWalletSimulationProviderError wraps an unexpected failure of the wallet data sources.
func NewWalletSimulationProviderError(err error) Error {
	return NewProviderFailureError(
		err.Error(),
		"Unable to simulate the wallet due to an internal error. Please try again later or contact the support team.",
	)
}
