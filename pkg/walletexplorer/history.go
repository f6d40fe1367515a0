package walletexplorer

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
)

const (
	txTypeReceived = "received"
	txTypeSent     = "sent"
)

type walletResponse struct {
	Found    bool       `json:"found"`
	Label    string     `json:"label"`
	WalletID string     `json:"wallet_id"`
	TxsCount int        `json:"txs_count"`
	Txs      []walletTx `json:"txs"`
}

type walletTx struct {
	TxID        string           `json:"txid"`
	BlockHeight int              `json:"block_height"`
	Time        int64            `json:"time"`
	Type        string           `json:"type"`
	Amount      float64          `json:"amount"`
	Outputs     []walletTxOutput `json:"outputs"`
}

type walletTxOutput struct {
	Amount   float64 `json:"amount"`
	WalletID string  `json:"wallet_id"`
	Label    string  `json:"label"`
}

func (o walletTxOutput) owner() string {
	if o.Label != "" {
		return o.Label
	}
	return o.WalletID
}

func (c *Client) walletPage(ctx context.Context, label string, offset int) (*walletResponse, error) {
	var res walletResponse
	err := c.get(ctx, "/wallet", map[string]string{
		"wallet": label,
		"from":   strconv.Itoa(offset),
		"count":  strconv.Itoa(c.cfg.PageSize),
	}, &res)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %s", wallet.ErrWalletNotFound, label)
	}
	return &res, nil
}

// TxCount returns the number of transactions in the wallet labelled label.
// Returns wallet.ErrWalletNotFound for unknown labels.
func (c *Client) TxCount(ctx context.Context, label string) (int, error) {
	page, err := c.walletPage(ctx, label, 0)
	if err != nil {
		return 0, err
	}
	return page.TxsCount, nil
}

// walletTxs downloads every page of the wallet history. The API lists newest first; the result is
// reversed into chronological order.
func (c *Client) walletTxs(ctx context.Context, label string, maxCount *int) ([]walletTx, error) {
	count, err := c.TxCount(ctx, label)
	if err != nil {
		return nil, err
	}
	if maxCount != nil && count > *maxCount {
		return nil, fmt.Errorf("%w: %s has %d transactions, limit is %d", wallet.ErrMaxTransactionsExceeded, label, count, *maxCount)
	}

	txs := make([]walletTx, 0, count)
	for offset := 0; offset < count; offset += c.cfg.PageSize {
		page, err := c.walletPage(ctx, label, offset)
		if err != nil {
			return nil, err
		}
		c.logger.Debugf("Fetched %d txs for %s", len(page.Txs), label)
		txs = append(txs, page.Txs...)
	}

	slices.Reverse(txs)
	return txs, nil
}

// WalletTxs returns the history of the wallet labelled label, earliest first.
//
// Returns wallet.ErrWalletNotFound for unknown labels and wallet.ErrMaxTransactionsExceeded when
// maxCount is set and the wallet holds more transactions. Entries that are neither received nor
// sent fail with wallet.ErrUnrecognizedRecord.
func (c *Client) WalletTxs(ctx context.Context, label string, maxCount *int) ([]wallet.Record, error) {
	txs, err := c.walletTxs(ctx, label, maxCount)
	if err != nil {
		return nil, err
	}

	records := make([]wallet.Record, 0, len(txs))
	for _, tx := range txs {
		switch tx.Type {
		case txTypeReceived:
			records = append(records, wallet.Receive{TxID: tx.TxID, Amount: tx.Amount})
		case txTypeSent:
			outputs := make([]wallet.SendOutput, 0, len(tx.Outputs))
			for _, o := range tx.Outputs {
				outputs = append(outputs, wallet.SendOutput{WalletID: o.owner(), Amount: o.Amount})
			}
			records = append(records, wallet.Send{TxID: tx.TxID, Outputs: outputs})
		default:
			return nil, fmt.Errorf("%w: tx %s of wallet %s has type %q", wallet.ErrUnrecognizedRecord, tx.TxID, label, tx.Type)
		}
	}
	return records, nil
}

// WalletTxIDs returns the ids of every transaction of the wallet labelled label, earliest first.
func (c *Client) WalletTxIDs(ctx context.Context, label string) ([]string, error) {
	txs, err := c.walletTxs(ctx, label, nil)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.TxID)
	}
	return ids, nil
}
