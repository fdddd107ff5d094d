package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.creack.net/polish/executor"
)

func newInterpretCmd(opts *options) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "interpret FILE",
		Short: "Evaluate a program and print its outputs and final bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseSource(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			e := &executor.Executor{Stdout: out, Logger: opts.logger}
			result, err := e.Evaluate(prog)
			if err != nil {
				return err
			}
			if quiet {
				return nil
			}
			for _, b := range result.Bindings {
				fmt.Fprintf(out, "%s = %s\n", b.Name, executor.FormatValue(b.Value))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print outputs only")
	return cmd
}
