// Package main is the entry point for the optcore configuration tool.
package main

import (
	"os"

	"github.com/dshills/optcore/cmd/optcore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
