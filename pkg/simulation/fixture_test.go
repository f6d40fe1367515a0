package simulation_test

import (
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/internal/testabilities"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
)

func in(txid string, index uint32) []wallet.TxIn {
	return []wallet.TxIn{testabilities.Spend(txid, index)}
}

// chainTxs backs the wallet histories below.
var chainTxs = []*wallet.DecodedTx{
	testabilities.DecodedTx("a1", in("f1", 0), 0.5),
	testabilities.DecodedTx("a2", in("f2", 0), 0.30000001, 0.7),
	testabilities.DecodedTx("s1", []wallet.TxIn{testabilities.Spend("a1", 0), testabilities.Spend("a2", 0)}, 0.2, 0.6),
	testabilities.DecodedTx("a3", in("f3", 0), 0.1),
	testabilities.DecodedTx("s2", in("s1", 1), 0.6),
	testabilities.DecodedTx("a4", in("f4", 0), 0.05),

	testabilities.DecodedTx("v1", in("f5", 0), 0.0000001),
	testabilities.DecodedTx("v2", in("f5", 1), 0.0000001),
	testabilities.DecodedTx("v3", in("f5", 2), 0.0000001),
	testabilities.DecodedTx("v4", in("f5", 3), 0.0000001),
	testabilities.DecodedTx("v5", in("f5", 4), 0.0000001),
	testabilities.DecodedTx("vs", []wallet.TxIn{testabilities.Spend("v1", 0), testabilities.Spend("v2", 0)}, 0.0000002),

	testabilities.DecodedTx("b1", in("f6", 0), 0.4, 0.5),
}

// histories:
//
//	W: spends 0.2 from [0.5, 0.30000001] (alternate only), then 0.6 from [0.6, 0.1] (neither)
//	V: spends 20 sats from five outputs of 10 sats (both forms)
//	Broken: receives an amount nothing accounts for
//	Big: longer than the per wallet limit used in tests
var histories = map[string][]wallet.Record{
	"W": {
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a2", Amount: 0.30000001},
		wallet.Send{TxID: "s1", Outputs: []wallet.SendOutput{{WalletID: "X", Amount: 0.2}}},
		wallet.Receive{TxID: "a3", Amount: 0.1},
		wallet.Send{TxID: "s2", Outputs: []wallet.SendOutput{{WalletID: "X", Amount: 0.6}}},
		wallet.Receive{TxID: "a4", Amount: 0.05},
	},
	"V": {
		wallet.Receive{TxID: "v1", Amount: 0.0000001},
		wallet.Receive{TxID: "v2", Amount: 0.0000001},
		wallet.Receive{TxID: "v3", Amount: 0.0000001},
		wallet.Receive{TxID: "v4", Amount: 0.0000001},
		wallet.Receive{TxID: "v5", Amount: 0.0000001},
		wallet.Send{TxID: "vs", Outputs: []wallet.SendOutput{{WalletID: "X", Amount: 0.0000002}}},
	},
	"Broken": {
		wallet.Receive{TxID: "b1", Amount: 0.9},
	},
	"Big": {
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a1", Amount: 0.5},
		wallet.Receive{TxID: "a1", Amount: 0.5},
	},
}

func walletDeps(t *testing.T) wallet.Dependencies {
	t.Helper()
	return wallet.Dependencies{
		History: testabilities.NewHistoryProviderMock(t, testabilities.HistoryProviderMockExpectations{
			Records:       histories,
			WalletTxsCall: true,
		}),
		Resolver: testabilities.NewOutputResolverMock(t, testabilities.OutputResolverMockExpectations{}),
		Node:     testabilities.NewNodeServiceMock(t, testabilities.NodeServiceMockExpectations{Txs: chainTxs, DecodedCall: true}),
	}
}
