package main

import (
	"fmt"

	"github.com/dhamidi/comb/internal/grammars"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "grammar <name>",
		Short:     "Print the EBNF of a grammar",
		Args:      cobra.ExactArgs(1),
		ValidArgs: grammars.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammars.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), g.EBNF)
			return nil
		},
	}
}
