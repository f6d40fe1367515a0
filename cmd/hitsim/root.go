package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/4chain-ag/go-hit-simulator/pkg/bitcoind"
	"github.com/4chain-ag/go-hit-simulator/pkg/config"
	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/4chain-ag/go-hit-simulator/pkg/wallet"
	"github.com/4chain-ag/go-hit-simulator/pkg/walletexplorer"
	"github.com/gookit/slog"
	"github.com/spf13/cobra"
)

// cli carries the state shared by every subcommand once the persistent flags are parsed.
type cli struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.SugaredLogger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "hitsim",
		Short: "Heterogeneous Input Transaction compliance simulator",
		Long: `hitsim checks whether wallets could have shaped their payments as Heterogeneous
Input Transactions, in standard form or alternate form.

Random wallets are generated locally. Real wallets are replayed from the
WalletExplorer clustering API and a bitcoind node.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				c.logger.Flush()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (yaml, json or env); defaults to ./config.yaml when present")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "overrides the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newRandomCmd(c),
		newWalletCmd(c),
		newPrintCmd(c),
		newLabelsCmd(c),
		newServeCmd(c),
		newConfigCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	cfg, err := config.LoadFromPath(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Logger.Level = c.logLevel
	}

	c.cfg = cfg
	c.logger = logging.New(cfg.Logger, c.errOut)
	return nil
}

func (c *cli) matcher() *hit.Matcher {
	return hit.NewMatcher(
		hit.WithMaxStandardFormAttempts(c.cfg.Matcher.MaxStandardFormAttempts),
		hit.WithLogger(c.logger),
	)
}

func (c *cli) explorer() *walletexplorer.Client {
	return walletexplorer.New(c.cfg.WalletExplorer, walletexplorer.WithLogger(c.logger))
}

func (c *cli) node() *bitcoind.Client {
	return bitcoind.New(c.cfg.Bitcoind, bitcoind.WithLogger(c.logger))
}

// walletDeps wires WalletExplorer as history provider and output resolver and bitcoind as node service.
func (c *cli) walletDeps() wallet.Dependencies {
	explorer := c.explorer()
	return wallet.Dependencies{
		History:  explorer,
		Resolver: explorer,
		Node:     c.node(),
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func (c *cli) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
