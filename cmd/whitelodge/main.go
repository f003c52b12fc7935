// Package main is the entry point for the whitelodge CLI.
//
// whitelodge stores can be built either programmatically (SDK) or declared
// in a YAML file. This CLI works with the declaration files.
//
// Usage:
//
//	whitelodge validate -c stores.yaml # Validate a store declaration file
//	whitelodge inspect -c stores.yaml  # Build the stores and print them
//	whitelodge version                 # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "whitelodge",
	Short: "Observable state containers, declared in YAML",
	Long: `whitelodge manages named observable state stores.

A declaration file lists the stores a program starts with - each store's
name, initial state, history depth, and logging flag. This CLI validates
declaration files and inspects the stores they would build.

Quick start:
  1. Create a declaration file (stores.yaml)
  2. Run: whitelodge validate -c stores.yaml
  3. Run: whitelodge inspect -c stores.yaml

Example declaration:
  stores:
    - name: counter
      initial_state:
        count: 0
      history_depth: 15`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this whitelodge binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("whitelodge %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
