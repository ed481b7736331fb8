// Package main is the entry point for the bill-tally CLI.
package main

import (
	"os"

	"github.com/billtally/billtally/cmd/bill-tally/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
