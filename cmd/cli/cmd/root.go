// Package cmd provides the CLI commands for flightfare.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flightfare/internal/config"
	"flightfare/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flightfare",
	Short: "Normalize provider flight segments into canonical fares",
	Long: `flightfare converts raw flight-search provider segments into the
canonical fare records consumed by booking and UI logic.

Examples:
  flightfare normalize segment.json
  flightfare normalize --adults 2 --children 1 --fare-index 1 segment.json
  flightfare normalize --roundtrip --legs legs.json segment.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("flightfare version 0.1.0")
	},
}
