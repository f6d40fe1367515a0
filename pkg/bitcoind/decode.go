package bitcoind

import (
	"encoding/hex"
	"fmt"

	"github.com/4chain-ag/go-hit-simulator/pkg/satoshi"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
	"github.com/bsv-blockchain/go-sdk/transaction"
)

// DecodeLocally parses a hex serialized transaction into the decoderawtransaction layout.
func DecodeLocally(raw string) (*wallet.DecodedTx, error) {
	tx, err := transaction.NewTransactionFromHex(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse raw transaction: %w", err)
	}

	decoded := &wallet.DecodedTx{
		TxID: tx.TxID().String(),
		Vin:  make([]wallet.TxIn, 0, len(tx.Inputs)),
		Vout: make([]wallet.TxOut, 0, len(tx.Outputs)),
	}

	coinbase := tx.IsCoinbase()
	for _, in := range tx.Inputs {
		if coinbase {
			var script string
			if in.UnlockingScript != nil {
				script = hex.EncodeToString(*in.UnlockingScript)
			}
			decoded.Vin = append(decoded.Vin, wallet.TxIn{Coinbase: script})
			continue
		}
		decoded.Vin = append(decoded.Vin, wallet.TxIn{
			PrevTxID:  in.SourceTXID.String(),
			PrevIndex: in.SourceTxOutIndex,
		})
	}

	for i, out := range tx.Outputs {
		decoded.Vout = append(decoded.Vout, wallet.TxOut{
			Value: satoshi.ToCoins(int64(out.Satoshis)),
			N:     uint32(i),
		})
	}
	return decoded, nil
}
