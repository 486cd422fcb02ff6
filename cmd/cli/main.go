// Package main is the entry point for the dwex CLI binary.
package main

import (
	"os"

	cli "dwex-demo/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
