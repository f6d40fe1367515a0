package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrOutputNotFound is returned when a claimed amount cannot be attributed to any outputs of a transaction.
	ErrOutputNotFound = errors.New("output not found")

	// ErrCurrentTxNotSend is returned when a desired spend is requested for a record that is not a send.
	ErrCurrentTxNotSend = errors.New("current transaction is not a send")

	// ErrCurrentTxIsLast is returned when stepping past the last record of the history.
	ErrCurrentTxIsLast = errors.New("current transaction is the last in this wallet")

	// ErrWalletNotFound is returned by history providers for unknown wallet labels.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrMaxTransactionsExceeded is returned by history providers when a wallet holds more
	// transactions than the caller allows.
	ErrMaxTransactionsExceeded = errors.New("wallet exceeds the maximum number of transactions")

	// ErrUnrecognizedRecord is returned when the history contains a record that is neither a receive nor a send.
	ErrUnrecognizedRecord = errors.New("unrecognized transaction record")
)

// OutputNotFoundError describes a received amount that could not be matched to the outputs
// attributed to the wallet. It unwraps to ErrOutputNotFound.
type OutputNotFoundError struct {
	TxID   string
	Amount int64
	Found  int64
}

func (e *OutputNotFoundError) Error() string {
	return fmt.Sprintf("output not found: tx %s claims %d satoshis, attributed outputs total %d", e.TxID, e.Amount, e.Found)
}

func (e *OutputNotFoundError) Unwrap() error { return ErrOutputNotFound }
