package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.creack.net/polish/compiler"
)

func (o *options) compiler() *compiler.Compiler {
	return &compiler.Compiler{
		Options: compiler.Options{Comments: o.cfg.Comments()},
		Logger:  o.logger,
	}
}

func newCompileCmd(opts *options) *cobra.Command {
	var output string
	var noComments bool
	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Generate the machine listing of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseSource(cmd, args[0])
			if err != nil {
				return err
			}
			c := opts.compiler()
			if noComments {
				c.Options.Comments = false
			}
			listing := c.Generate(prog)
			if output == "" || output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), listing.Text)
				return nil
			}
			if err := os.WriteFile(output, []byte(listing.Text), 0o644); err != nil {
				return fmt.Errorf("write listing: %w", err)
			}
			opts.logger.Info("listing written", "path", output, "symbols", len(listing.Symbols))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the listing to a file instead of stdout")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "omit source comments")
	return cmd
}
