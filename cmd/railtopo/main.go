// Command railtopo runs the railway next-station inference pipeline (and
// its secondary identity-linking pipeline) from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
