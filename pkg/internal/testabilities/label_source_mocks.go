package testabilities

import (
	"context"
	"fmt"
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/walletexplorer"
	"github.com/stretchr/testify/require"
)

// BlockTxListerMockExpectations defines the expected behavior of the BlockTxListerMock during a test.
type BlockTxListerMockExpectations struct {
	TxIDs             map[int64][]string
	Error             error
	TxIDsAtHeightCall bool
}

// BlockTxListerMock is a mock implementation of a block transaction lister keyed by height.
type BlockTxListerMock struct {
	t            *testing.T
	expectations BlockTxListerMockExpectations
	called       bool
}

// TxIDsAtHeight returns the predefined txids of the block at height.
func (m *BlockTxListerMock) TxIDsAtHeight(_ context.Context, height int64) ([]string, error) {
	m.t.Helper()
	m.called = true

	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	txids, ok := m.expectations.TxIDs[height]
	if !ok {
		return nil, fmt.Errorf("block height out of range: %d", height)
	}
	return txids, nil
}

// AssertCalled verifies that the TxIDsAtHeight method was called if it was expected to be.
func (m *BlockTxListerMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.TxIDsAtHeightCall, m.called, "Discrepancy between expected and actual TxIDsAtHeight call")
}

// NewBlockTxListerMock creates a new instance of BlockTxListerMock with the given expectations.
func NewBlockTxListerMock(t *testing.T, expectations BlockTxListerMockExpectations) *BlockTxListerMock {
	return &BlockTxListerMock{t: t, expectations: expectations}
}

// TxInfoProviderMockExpectations defines the expected behavior of the TxInfoProviderMock during a test.
type TxInfoProviderMockExpectations struct {
	Infos      map[string]walletexplorer.TxInfo
	Error      error
	TxInfoCall bool
}

// TxInfoProviderMock is a mock implementation of a sender lookup keyed by txid.
// Unknown txids return walletexplorer.ErrTxNotFound.
type TxInfoProviderMock struct {
	t            *testing.T
	expectations TxInfoProviderMockExpectations
	called       bool
}

// TxInfo returns the predefined sender of txid.
func (m *TxInfoProviderMock) TxInfo(_ context.Context, txid string) (walletexplorer.TxInfo, error) {
	m.t.Helper()
	m.called = true

	if m.expectations.Error != nil {
		return walletexplorer.TxInfo{}, m.expectations.Error
	}
	info, ok := m.expectations.Infos[txid]
	if !ok {
		return walletexplorer.TxInfo{}, fmt.Errorf("%w: %s", walletexplorer.ErrTxNotFound, txid)
	}
	return info, nil
}

// AssertCalled verifies that the TxInfo method was called if it was expected to be.
func (m *TxInfoProviderMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.TxInfoCall, m.called, "Discrepancy between expected and actual TxInfo call")
}

// NewTxInfoProviderMock creates a new instance of TxInfoProviderMock with the given expectations.
func NewTxInfoProviderMock(t *testing.T, expectations TxInfoProviderMockExpectations) *TxInfoProviderMock {
	return &TxInfoProviderMock{t: t, expectations: expectations}
}
