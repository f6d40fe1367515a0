package simulation

import (
	"context"
	"fmt"
	"io"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
)

// PrintWallet writes the UTXO set of the wallet labelled label as it stood before each of its sends,
// followed by the amount that send paid out.
func PrintWallet(ctx context.Context, out io.Writer, label string, deps wallet.Dependencies, logger logging.Logger) error {
	w, err := wallet.New(ctx, label, deps, wallet.WithBatchMode(true), wallet.WithLogger(logger))
	if err != nil {
		return err
	}

	for w.HasNext() {
		outcome, err := w.Advance(ctx)
		if err != nil {
			return err
		}
		if !w.IsNextSend() {
			break
		}

		spend, err := w.PendingDesiredSpend()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "UTXOs: %v\n", outcome.UTXOs)
		fmt.Fprintf(out, "Desired Spend (in satoshis): %d\n", spend)
	}
	return nil
}
