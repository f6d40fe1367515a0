package main

import (
	"context"
	"errors"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/server"
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var noWallets bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form matcher and the wallet simulation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []server.ServerOption{
				server.WithConfig(c.cfg.Server),
				server.WithFormMatcher(c.matcher()),
			}
			if !noWallets {
				sim := simulation.NewWalletSimulator(c.cfg.Simulation.Wallet, c.walletDeps(), c.matcher(), c.logger)
				opts = append(opts, server.WithWalletSimulator(sim))
			}
			srv := server.New(opts...)

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				c.logger.Infof("Listening on %s", srv.SocketAddr())
				errCh <- srv.ListenAndServe(ctx)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			c.logger.Infof("Shutting down")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()

			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noWallets, "no-wallets", false, "disable the wallet simulation endpoint")
	return cmd
}
