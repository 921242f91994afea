package main

import (
	"github.com/dhamidi/comb/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(root.config, version)
			return server.RunStdio()
		},
	}
}
