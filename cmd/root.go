// Package cmd implements the polish command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go.creack.net/polish/config"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// options shared by every subcommand.
type options struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "polish",
		Short: "Prefix notation toolchain",
		Long: `polish lexes, parses, interprets and compiles programs written in a
small prefix notation language:

  x = + 2 3
  output @ x 4

Operators are + (add), - (subtract), @ (multiply) and % (divide).
FILE may be "-" to read standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file, TOML or YAML (default: built-in settings)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(
		newTokensCmd(opts),
		newTreeCmd(opts),
		newInterpretCmd(opts),
		newCompileCmd(opts),
		newRunCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func (o *options) setup(stderr io.Writer) error {
	o.cfg = config.Default()
	if o.cfgFile != "" {
		cfg, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	level := o.cfg.Level()
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// Execute runs the command line and reports failures on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error:"), err)
}
