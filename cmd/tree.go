package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"go.creack.net/polish/config"
)

var (
	symbolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	terminalStyle = lipgloss.NewStyle().Bold(true)
)

func newTreeCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Show the parse tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseSource(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = opts.cfg.Output.TreeFormat
			}

			out := cmd.OutOrStdout()
			switch format {
			case config.TreeText:
				fmt.Fprintln(out, prog.Tree().Render(symbolStyle, terminalStyle))
			case config.TreeYAML:
				buf, err := prog.Tree().YAML()
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(buf))
			case config.TreeDump:
				fmt.Fprintln(out, litter.Options{HidePrivateFields: true}.Sdump(prog))
			default:
				return fmt.Errorf("unknown tree format %q, expected one of text, yaml, dump", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.TreeText, "view: text, yaml or dump")
	return cmd
}
