package testabilities

import (
	"context"
	"fmt"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
	"github.com/stretchr/testify/require"
)

// HistoryProviderMockExpectations defines the expected behavior of the HistoryProviderMock during a test.
type HistoryProviderMockExpectations struct {
	Records       map[string][]wallet.Record
	Error         error
	WalletTxsCall bool
}

// HistoryProviderMock is a mock implementation of wallet.HistoryProvider serving fixed histories per label.
// Unknown labels return wallet.ErrWalletNotFound and maxCount is enforced the way a real provider does.
type HistoryProviderMock struct {
	t            *testing.T
	expectations HistoryProviderMockExpectations
	called       bool
}

// WalletTxs returns the predefined history of label.
func (m *HistoryProviderMock) WalletTxs(_ context.Context, label string, maxCount *int) ([]wallet.Record, error) {
	m.t.Helper()
	m.called = true

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	records, ok := m.expectations.Records[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s", wallet.ErrWalletNotFound, label)
	}
	if maxCount != nil && len(records) > *maxCount {
		return nil, fmt.Errorf("%w: %s has %d", wallet.ErrMaxTransactionsExceeded, label, len(records))
	}
	return records, nil
}

// AssertCalled verifies that the WalletTxs method was called if it was expected to be.
func (m *HistoryProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.WalletTxsCall, m.called, "Discrepancy between expected and actual WalletTxs call")
}

// NewHistoryProviderMock creates a new instance of HistoryProviderMock with the given expectations.
func NewHistoryProviderMock(t *testing.T, expectations HistoryProviderMockExpectations) *HistoryProviderMock {
	return &HistoryProviderMock{t: t, expectations: expectations}
}

// OutputResolverMockExpectations defines the expected behavior of the OutputResolverMock during a test.
type OutputResolverMockExpectations struct {
	Outputs                 map[string][]wallet.UTXO
	Error                   error
	OutputsSentToWalletCall bool
}

// OutputResolverMock is a mock implementation of wallet.OutputResolver keyed by txid.
type OutputResolverMock struct {
	t            *testing.T
	expectations OutputResolverMockExpectations
	calls        []string
}

// OutputsSentToWallet returns the predefined outputs of txid. Unknown txids resolve to no outputs.
func (m *OutputResolverMock) OutputsSentToWallet(_ context.Context, txid, _ string) ([]wallet.UTXO, error) {
	m.t.Helper()
	m.calls = append(m.calls, txid)

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Outputs[txid], nil
}

// Calls returns the txids the resolver was asked about, in order.
func (m *OutputResolverMock) Calls() []string { return m.calls }

// AssertCalled verifies that the OutputsSentToWallet method was called if it was expected to be.
func (m *OutputResolverMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.OutputsSentToWalletCall, len(m.calls) > 0, "Discrepancy between expected and actual OutputsSentToWallet call")
}

// NewOutputResolverMock creates a new instance of OutputResolverMock with the given expectations.
func NewOutputResolverMock(t *testing.T, expectations OutputResolverMockExpectations) *OutputResolverMock {
	return &OutputResolverMock{t: t, expectations: expectations}
}

// NodeServiceMockExpectations defines the expected behavior of the NodeServiceMock during a test.
type NodeServiceMockExpectations struct {
	Txs         []*wallet.DecodedTx
	Error       error
	DecodedCall bool
}

// NodeServiceMock is a mock implementation of wallet.NodeService backed by a fixed set of decoded transactions.
type NodeServiceMock struct {
	t            *testing.T
	expectations NodeServiceMockExpectations
	txs          map[string]*wallet.DecodedTx
	called       bool
}

// DecodedTx returns the predefined transaction with the given txid.
func (m *NodeServiceMock) DecodedTx(_ context.Context, txid string) (*wallet.DecodedTx, error) {
	m.t.Helper()
	m.called = true

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	tx, ok := m.txs[txid]
	if !ok {
		return nil, fmt.Errorf("no such transaction %s", txid)
	}
	return tx, nil
}

// AssertCalled verifies that the DecodedTx method was called if it was expected to be.
func (m *NodeServiceMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.DecodedCall, m.called, "Discrepancy between expected and actual DecodedTx call")
}

// NewNodeServiceMock creates a new instance of NodeServiceMock with the given expectations.
func NewNodeServiceMock(t *testing.T, expectations NodeServiceMockExpectations) *NodeServiceMock {
	txs := make(map[string]*wallet.DecodedTx, len(expectations.Txs))
	for _, tx := range expectations.Txs {
		txs[tx.TxID] = tx
	}
	return &NodeServiceMock{t: t, expectations: expectations, txs: txs}
}
