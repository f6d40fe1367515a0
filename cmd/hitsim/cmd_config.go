package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and export the configuration",
	}

	var (
		output     string
		regenToken bool
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the effective configuration to a yaml, json or env file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if regenToken {
				cfg.Server.WalletBearerToken = uuid.NewString()
			}
			if err := cfg.Export(output); err != nil {
				return err
			}
			c.printf("Configuration written to %s\n", output)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&output, "output-file", "o", "config.yaml", "output configuration file path")
	exportCmd.Flags().BoolVarP(&regenToken, "regen-token", "t", false, "generate a new wallet endpoint bearer token")

	var format string
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cfg.Print(c.out, format)
		},
	}
	printCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format, json or yaml")

	cmd.AddCommand(exportCmd, printCmd)
	return cmd
}
