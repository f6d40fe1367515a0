package main

import (
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/spf13/cobra"
)

func newLabelsCmd(c *cli) *cobra.Command {
	var (
		height int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Collect the labels of the wallets sending in a block",
		Long: `Lists the transactions of the block at the given height through bitcoind, looks up the
sending wallet of each on WalletExplorer and writes the unique labels as a JSON array.
The file is the input of the wallet command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = c.cfg.Simulation.Wallet.LabelsFile
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			labels, err := simulation.DiscoverLabels(ctx, c.node(), c.explorer(), height, c.logger)
			if err != nil {
				return err
			}
			if err := simulation.SaveWalletLabels(output, labels); err != nil {
				return err
			}

			c.printf("Wrote %d wallet labels to %s\n", len(labels), output)
			return nil
		},
	}

	cmd.Flags().Int64Var(&height, "height", 398159, "block height to collect wallets from")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to simulation.wallet.labels_file")
	return cmd
}
