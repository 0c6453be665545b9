// Package main is the entry point for the unstutter CLI.
package main

import (
	"os"

	"github.com/rjessup/unstutter/cmd/unstutter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
