package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/walletexplorer"
)

// BlockTxLister lists the transactions of a block.
type BlockTxLister interface {
	TxIDsAtHeight(ctx context.Context, height int64) ([]string, error)
}

// TxInfoProvider tells which wallet sent a transaction.
type TxInfoProvider interface {
	TxInfo(ctx context.Context, txid string) (walletexplorer.TxInfo, error)
}

// DiscoverLabels returns the labels of the wallets that sent the transactions of the block at height,
// in the order they were first seen. Coinbase transactions and transactions unknown to the provider
// are skipped.
func DiscoverLabels(ctx context.Context, blocks BlockTxLister, txs TxInfoProvider, height int64, logger logging.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	txids, err := blocks.TxIDsAtHeight(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("failed to list txs at height %d: %w", height, err)
	}
	logger.Infof("Block %d holds %d txs", height, len(txids))

	seen := make(map[string]struct{})
	var labels []string
	for _, txid := range txids {
		info, err := txs.TxInfo(ctx, txid)
		if errors.Is(err, walletexplorer.ErrTxNotFound) {
			logger.Warnf("Skipped %s: %v", txid, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up tx %s: %w", txid, err)
		}
		if info.IsCoinbase || info.Wallet == "" {
			continue
		}
		if _, ok := seen[info.Wallet]; ok {
			continue
		}
		seen[info.Wallet] = struct{}{}
		labels = append(labels, info.Wallet)
		logger.Debugf("%s sent by %s", txid, info.Wallet)
	}
	return labels, nil
}
