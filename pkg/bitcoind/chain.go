package bitcoind

import (
	"context"
	"errors"
	"fmt"

	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
)

// GenesisTxID is the coinbase of the genesis block. bitcoind cannot return it as a raw transaction.
const GenesisTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

// ErrGenesisTx is returned by RawTransaction for GenesisTxID.
var ErrGenesisTx = errors.New("genesis coinbase is not available as a raw transaction")

// Block is the subset of getblock's verbose output the simulators use.
type Block struct {
	Hash   string   `json:"hash"`
	Height int64    `json:"height"`
	Tx     []string `json:"tx"`
}

// BlockHash returns the hash of the block at height.
func (c *Client) BlockHash(ctx context.Context, height int64) (string, error) {
	var hash string
	if err := c.call(ctx, "getblockhash", &hash, height); err != nil {
		return "", err
	}
	return hash, nil
}

// Block returns the block with the given hash.
func (c *Client) Block(ctx context.Context, hash string) (*Block, error) {
	var block Block
	if err := c.call(ctx, "getblock", &block, hash); err != nil {
		return nil, err
	}
	return &block, nil
}

// TxIDsAtHeight lists the transaction ids of the block at height.
func (c *Client) TxIDsAtHeight(ctx context.Context, height int64) ([]string, error) {
	hash, err := c.BlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	block, err := c.Block(ctx, hash)
	if err != nil {
		return nil, err
	}
	return block.Tx, nil
}

// RawTransaction returns the hex serialization of txid.
// Returns ErrGenesisTx for the genesis coinbase, which callers iterating blocks should skip.
func (c *Client) RawTransaction(ctx context.Context, txid string) (string, error) {
	if txid == GenesisTxID {
		return "", ErrGenesisTx
	}

	var raw string
	if err := c.call(ctx, "getrawtransaction", &raw, txid); err != nil {
		return "", err
	}
	return raw, nil
}

// DecodeRawTransaction decodes a hex serialized transaction, either through bitcoind or in process
// when the client is configured to decode locally.
func (c *Client) DecodeRawTransaction(ctx context.Context, raw string) (*wallet.DecodedTx, error) {
	if c.cfg.DecodeLocally {
		return DecodeLocally(raw)
	}

	var tx wallet.DecodedTx
	if err := c.call(ctx, "decoderawtransaction", &tx, raw); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DecodedTx fetches and decodes txid. The genesis coinbase is answered from a built-in copy.
func (c *Client) DecodedTx(ctx context.Context, txid string) (*wallet.DecodedTx, error) {
	raw, err := c.RawTransaction(ctx, txid)
	if errors.Is(err, ErrGenesisTx) {
		return GenesisTx(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw tx %s: %w", txid, err)
	}

	tx, err := c.DecodeRawTransaction(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raw tx %s: %w", txid, err)
	}
	return tx, nil
}

// GenesisTx returns the genesis coinbase as decoderawtransaction would present it.
func GenesisTx() *wallet.DecodedTx {
	return &wallet.DecodedTx{
		TxID: GenesisTxID,
		Vin: []wallet.TxIn{{
			Coinbase: "04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73",
		}},
		Vout: []wallet.TxOut{{Value: 50.0, N: 0}},
	}
}
