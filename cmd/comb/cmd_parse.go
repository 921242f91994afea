package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/comb/document"
	"github.com/dhamidi/comb/format"
	"github.com/dhamidi/comb/internal/grammars"
	"github.com/spf13/cobra"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var grammarName string
	var outputFormat string
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a JSON or XML document and print the result",
		Long:  "Parse a document and print its tree. Use - to read from standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			cfg := root.config

			if grammarName == "" {
				name, ok := cfg.GrammarFor(filename)
				if !ok {
					return fmt.Errorf("no grammar for %s, use --grammar", filename)
				}
				grammarName = name
			}
			g, err := grammars.Lookup(grammarName)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				outputFormat = cfg.Format
			}
			out := cmd.OutOrStdout()
			encoder, err := format.NewEncoder(outputFormat, out)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("strict") {
				strict = cfg.Strict
			}

			text, err := readInput(cmd.InOrStdin(), filename)
			if err != nil {
				return err
			}

			opts := []document.Option{document.WithFile(filename)}
			if !strict {
				opts = append(opts, document.Partial())
			}
			tree, rest, err := g.Parse(text, opts...)
			if err != nil {
				return fmt.Errorf("parse %s: %w", filename, err)
			}

			if outputFormat != "tree" {
				if err := encoder.Encode(tree); err != nil {
					return fmt.Errorf("encode %s: %w", outputFormat, err)
				}
				return nil
			}

			fmt.Fprintln(out, "Document parsed!")
			fmt.Fprint(out, "Parsed: ")
			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			remains := rest.String()
			if remains == "" {
				remains = "-"
			}
			fmt.Fprintf(out, "Remains: %s\n", remains)
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "", "grammar to parse with (json, xml; default by file extension)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when input is left after the document")

	return cmd
}

func readInput(stdin io.Reader, filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
