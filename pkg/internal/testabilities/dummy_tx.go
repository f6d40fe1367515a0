package testabilities

import "github.com/4chain-ag/go-hit-simulator/pkg/wallet"

// Spend references output index of txid as a transaction input.
func Spend(txid string, index uint32) wallet.TxIn {
	return wallet.TxIn{PrevTxID: txid, PrevIndex: index}
}

// Coinbase is a coinbase input.
func Coinbase() wallet.TxIn {
	return wallet.TxIn{Coinbase: "04ffff001d0104"}
}

// DecodedTx builds a decoded transaction spending ins and paying the given coin values.
func DecodedTx(txid string, ins []wallet.TxIn, coins ...float64) *wallet.DecodedTx {
	tx := &wallet.DecodedTx{TxID: txid, Vin: ins}
	for i, c := range coins {
		tx.Vout = append(tx.Vout, wallet.TxOut{Value: c, N: uint32(i)})
	}
	return tx
}
