package main

import (
	"os"

	"github.com/dhamidi/comb/internal/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

type rootOptions struct {
	configPath string
	verbosity  int
	config     *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "comb",
		Short:        "Parse JSON and XML documents with parser combinators",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbosity = opts.verbosity
			}
			commonlog.Configure(cfg.Verbosity, cfg.LogPath())
			opts.config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvVar+" or "+config.DefaultFile+")")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newEbnfCmd())
	rootCmd.AddCommand(newLSPCmd(opts))

	return rootCmd
}
