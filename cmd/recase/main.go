package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recase",
		Short: "Case-conversion utilities and comments service",
		Long: `recase converts free-form text between casing conventions
(kebab-case, dot.case, camelCase) and serves a small comments API.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add subcommands
	rootCmd.AddCommand(kebabCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(camelCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Errors wrapping errSilent were already reported with formatting
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
