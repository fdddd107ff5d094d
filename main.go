package main

import (
	"os"

	"go.creack.net/polish/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
