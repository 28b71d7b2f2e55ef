package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "railtopo",
	Short: "Infer per-railway station adjacency from raw track geometry",
	Long: `railtopo ingests raw station/railway polyline geometry and infers the
topological adjacency graph of stations per railway line, assigning a
canonical left/right ordering to each station's neighbors.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML file overriding the compiled-in neighbor thresholds")

	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(linkCmd)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
