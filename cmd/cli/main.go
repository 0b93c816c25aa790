// Package main is the entry point for the flightfare CLI.
package main

import (
	"os"

	"flightfare/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
