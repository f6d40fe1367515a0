package main

import (
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/spf13/cobra"
)

func newWalletCmd(c *cli) *cobra.Command {
	var (
		labelsFile string
		reportFile string
		maxWallets int
	)

	cmd := &cobra.Command{
		Use:   "wallet [label...]",
		Short: "Replay real wallet histories and evaluate every send",
		Long: `Replays the history of each wallet, earliest transaction first, and checks whether
a standard and an alternate form could have funded each send from the UTXOs the wallet
held right before it. Labels are read from the labels file unless given as arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg.Simulation.Wallet
			if labelsFile != "" {
				cfg.LabelsFile = labelsFile
			}
			if reportFile != "" {
				cfg.ReportFile = reportFile
			}
			if cmd.Flags().Changed("max-wallets") {
				cfg.MaxWallets = maxWallets
			}

			labels := args
			if len(labels) == 0 {
				var err error
				if labels, err = simulation.LoadWalletLabels(cfg.LabelsFile); err != nil {
					return err
				}
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			sim := simulation.NewWalletSimulator(cfg, c.walletDeps(), c.matcher(), c.logger)
			report, err := sim.Run(ctx, labels)
			if cfg.ReportFile != "" {
				if werr := simulation.WriteReport(cfg.ReportFile, report); werr != nil {
					c.logger.Errorf("Failed to write report: %v", werr)
				}
			}
			if err != nil {
				return err
			}

			c.printf("Run %s: %d wallets, %d skipped, %d aborted\n", report.RunID, len(report.Wallets), report.Skipped, report.Aborted)
			c.printf("%s\n", report.Tally)
			return nil
		},
	}

	cmd.Flags().StringVar(&labelsFile, "labels", "", "JSON array of wallet labels, overrides simulation.wallet.labels_file")
	cmd.Flags().StringVar(&reportFile, "report", "", "write the JSON report to this file")
	cmd.Flags().IntVar(&maxWallets, "max-wallets", 0, "evaluate at most this many wallets, 0 for all")
	return cmd
}
