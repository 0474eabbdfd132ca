package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "u256: %v\n", err)
		os.Exit(1)
	}
}
