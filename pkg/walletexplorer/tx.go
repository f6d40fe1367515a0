package walletexplorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/4chain-ag/go-hit-simulator/pkg/satoshi"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
)

// ErrTxNotFound is returned when the API knows nothing about a transaction.
var ErrTxNotFound = errors.New("transaction not found")

type txResponse struct {
	Found      bool       `json:"found"`
	TxID       string     `json:"txid"`
	Label      string     `json:"label"`
	WalletID   string     `json:"wallet_id"`
	IsCoinbase bool       `json:"is_coinbase"`
	Out        []txOutput `json:"out"`
}

type txOutput struct {
	Address  string  `json:"address"`
	Amount   float64 `json:"amount"`
	Label    string  `json:"label"`
	WalletID string  `json:"wallet_id"`
}

func (o txOutput) owner() string {
	if o.Label != "" {
		return o.Label
	}
	return o.WalletID
}

// TxInfo describes which wallet a transaction was sent from.
type TxInfo struct {
	TxID       string `json:"txid"`
	Wallet     string `json:"wallet"`
	IsCoinbase bool   `json:"is_coinbase"`
}

func (c *Client) tx(ctx context.Context, txid string) (*txResponse, error) {
	if err := validateTxID(txid); err != nil {
		return nil, err
	}

	var res txResponse
	if err := c.get(ctx, "/tx", map[string]string{"txid": txid}, &res); err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %s", ErrTxNotFound, txid)
	}
	return &res, nil
}

// TxInfo returns the sending wallet of txid. The wallet label is preferred over the wallet id.
func (c *Client) TxInfo(ctx context.Context, txid string) (TxInfo, error) {
	res, err := c.tx(ctx, txid)
	if err != nil {
		return TxInfo{}, err
	}

	info := TxInfo{TxID: txid, Wallet: res.Label, IsCoinbase: res.IsCoinbase}
	if info.Wallet == "" {
		info.Wallet = res.WalletID
	}
	return info, nil
}

// OutputsSentToWallet returns every output of txid that the API attributes to the wallet labelled label.
func (c *Client) OutputsSentToWallet(ctx context.Context, txid, label string) ([]wallet.UTXO, error) {
	res, err := c.tx(ctx, txid)
	if err != nil {
		return nil, err
	}

	var utxos []wallet.UTXO
	for i, out := range res.Out {
		if out.owner() != label {
			continue
		}
		utxos = append(utxos, wallet.UTXO{
			TxID:        txid,
			OutputIndex: uint32(i),
			Satoshis:    satoshi.FromCoins(out.Amount),
		})
	}
	return utxos, nil
}
