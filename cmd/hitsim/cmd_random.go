package main

import (
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/spf13/cobra"
)

func newRandomCmd(c *cli) *cobra.Command {
	var (
		tests int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Evaluate HIT compliance for randomly generated wallets",
		Long: `Generates wallets holding between 1 and max_utxos values, draws a spend between 1 and
the wallet balance, and tallies whether a standard and an alternate form exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg.Simulation.Random
			if cmd.Flags().Changed("tests") {
				cfg.Tests = tests
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			sim, err := simulation.NewRandomSimulator(cfg, c.matcher(), c.logger)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			tally, err := sim.Run(ctx)
			if err != nil {
				return err
			}
			c.printf("%s\n", tally)
			return nil
		},
	}

	cmd.Flags().IntVarP(&tests, "tests", "n", 0, "number of random wallets, overrides simulation.random.tests")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, overrides simulation.random.seed")
	return cmd
}
