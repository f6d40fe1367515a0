package wallet

import "context"

// HistoryProvider returns a wallet's transaction history, earliest first.
//
// Implementations return ErrWalletNotFound for unknown labels and ErrMaxTransactionsExceeded
// when maxCount is set and the wallet holds more transactions.
type HistoryProvider interface {
	WalletTxs(ctx context.Context, label string, maxCount *int) ([]Record, error)
}

// OutputResolver gives the definitive list of a transaction's outputs paid to a wallet.
type OutputResolver interface {
	OutputsSentToWallet(ctx context.Context, txid, label string) ([]UTXO, error)
}

// NodeService decodes transactions the way bitcoind's decoderawtransaction does.
type NodeService interface {
	DecodedTx(ctx context.Context, txid string) (*DecodedTx, error)
}

// Dependencies groups the data sources a Wallet reads from.
type Dependencies struct {
	History  HistoryProvider
	Resolver OutputResolver
	Node     NodeService
}

// DecodedTx is a decoded transaction. Output values are in whole coins.
type DecodedTx struct {
	TxID string  `json:"txid"`
	Vin  []TxIn  `json:"vin"`
	Vout []TxOut `json:"vout"`
}

// TxIn references the output spent by a transaction input.
// Coinbase inputs carry the coinbase script instead of a previous output.
type TxIn struct {
	Coinbase  string `json:"coinbase,omitempty"`
	PrevTxID  string `json:"txid,omitempty"`
	PrevIndex uint32 `json:"vout"`
}

// IsCoinbase reports whether the input creates new coins rather than spending an output.
func (in TxIn) IsCoinbase() bool {
	return in.Coinbase != "" || in.PrevTxID == ""
}

// TxOut is a decoded transaction output.
type TxOut struct {
	Value float64 `json:"value"`
	N     uint32  `json:"n"`
}
