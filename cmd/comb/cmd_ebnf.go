package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/dhamidi/comb/internal/grammars"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "EBNF grammar tools",
	}

	cmd.AddCommand(newEbnfCheckCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file|grammar>",
		Short: "Parse and verify an EBNF grammar file or a built-in grammar",
		Long: "Parse and verify an EBNF grammar. The argument is a file, or the name of a " +
			"built-in grammar (" + strings.Join(grammars.Names(), ", ") + "), which is " +
			"verified from its start production unless --start is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, start, err := openGrammar(args[0])
			if err != nil {
				return err
			}
			defer src.Close()
			if startProduction != "" {
				start = startProduction
			}

			grammar, err := ebnf.Parse(name, src)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return fmt.Errorf("%s: invalid grammar", name)
			}

			if start == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions\n", name, len(grammar))
				return nil
			}
			if err := ebnf.Verify(grammar, start); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return fmt.Errorf("%s: verification from %s failed", name, start)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions, verified from %s\n", name, len(grammar), start)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax of files)")

	return cmd
}

// openGrammar opens arg as a file, falling back to the embedded EBNF of the
// grammar called arg. Built-in grammars come with their start production.
func openGrammar(arg string) (string, io.ReadCloser, string, error) {
	f, err := os.Open(arg)
	if err == nil {
		return arg, f, "", nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", nil, "", fmt.Errorf("open file: %w", err)
	}
	g, lookupErr := grammars.Lookup(arg)
	if lookupErr != nil {
		return "", nil, "", fmt.Errorf("open file: %w", err)
	}
	return g.Name + ".ebnf", io.NopCloser(strings.NewReader(g.EBNF)), g.Start, nil
}

// printErrors writes each error of an ebnf error list on its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
