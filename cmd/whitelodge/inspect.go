package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/whitelodge"
	"github.com/jpalmerr/whitelodge/config"
	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// inspectCmd builds the declared stores and prints their effective shape.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Build the declared stores and print them",
	Long: `Build the stores from a declaration file and print each store's
name, history depth, logging flag, and initial state as JSON.

Unlike validate, inspect exercises the full SDK construction path: the
initial state is merged through the same code a program would run, so any
SDK-level validation error surfaces here.

Example:
  whitelodge inspect -c stores.yaml`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("config", "c", "", "path to declaration file (required)")
	_ = inspectCmd.MarkFlagRequired("config")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	reg, err := config.BuildRegistry(cfg, whitelodge.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build stores: %w", err)
	}

	for _, name := range reg.Names() {
		store, _ := reg.Lookup(name)

		stateJSON, err := json.Marshal(store.State())
		if err != nil {
			return fmt.Errorf("store %q: failed to encode state: %w", name, err)
		}

		fmt.Printf("%s\n", name)
		fmt.Printf("  history depth: %d\n", store.HistoryDepth())
		fmt.Printf("  state:         %s\n", stateJSON)
	}

	return nil
}
