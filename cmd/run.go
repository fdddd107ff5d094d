package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.creack.net/polish/compiler"
	"go.creack.net/polish/executor"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Compile a program and execute the listing on the simulated machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseSource(cmd, args[0])
			if err != nil {
				return err
			}
			listing := opts.compiler().Generate(prog)
			cpu, err := compiler.Simulate(listing)
			if cpu != nil {
				for _, v := range cpu.Outputs {
					fmt.Fprintln(cmd.OutOrStdout(), executor.FormatValue(v))
				}
			}
			return err
		},
	}
}
