// Package main provides the CLI for the converse assistant framework.
package main

import (
	"os"

	"github.com/converse-labs/converse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
