package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.creack.net/polish/ast"
	"go.creack.net/polish/parser"
)

// readSource reads the FILE argument, "-" being stdin.
func readSource(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(buf), nil
	}
	buf, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(buf), nil
}

func parseSource(cmd *cobra.Command, name string) (*ast.Program, error) {
	src, err := readSource(cmd, name)
	if err != nil {
		return nil, err
	}
	prog, err := parser.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return prog, nil
}
