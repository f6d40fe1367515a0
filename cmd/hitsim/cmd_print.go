package main

import (
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/spf13/cobra"
)

func newPrintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "print <label>",
		Short: "Print a wallet's UTXO set before each of its sends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			return simulation.PrintWallet(ctx, c.out, args[0], c.walletDeps(), c.logger)
		},
	}
}
