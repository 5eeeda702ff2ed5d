// Command catctl drives a categorical array through the command line, one
// subcommand per internal/dispatch operation. Every subcommand reads a
// categorical.NumericMatrix as JSON (from a file argument or stdin),
// applies one operation, and writes the resulting matrix as JSON to
// stdout, so subcommands compose by piping: catctl resize -n 3 a.json |
// catctl set-category -c x -v a,b,c | catctl select -i 0,2.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
