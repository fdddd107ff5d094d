package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.creack.net/polish/lexer"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "List the lexemes of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			lexemes := lexer.New(src).All()
			for _, lex := range lexemes {
				fmt.Fprintln(cmd.OutOrStdout(), lex)
			}
			opts.logger.Debug("tokens", "count", len(lexemes))
			return nil
		},
	}
}
