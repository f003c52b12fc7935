// Package config provides YAML store declarations for whitelodge.
//
// This package enables declaring a whole store set in a configuration file,
// as an alternative to constructing stores programmatically via the SDK.
// The whitelodge CLI uses it for validation and inspection.
//
// Example configuration:
//
//	stores:
//	  - name: counter
//	    initial_state:
//	      count: 0
//	    history_depth: 15
//
//	  - name: session
//	    initial_state:
//	      user: ${SESSION_USER:-anonymous}
//	    log_state: true
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// defaultHistoryDepth mirrors the SDK default for stores declared without
// an explicit history_depth.
const defaultHistoryDepth = 15

// Config is the root configuration structure for a whitelodge store set.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Stores declares the stores to build, in declaration order.
	Stores []StoreConfig `yaml:"stores"`
}

// StoreConfig declares a single store.
type StoreConfig struct {
	// Name is the store's unique identifier.
	Name string `yaml:"name"`

	// InitialState is the state merged into the store at construction.
	// String values support environment variable substitution:
	// ${VAR} or ${VAR:-default}.
	InitialState map[string]any `yaml:"initial_state"`

	// LogState enables the per-mutation diagnostic log line.
	LogState bool `yaml:"log_state"`

	// HistoryDepth is how many previous states the store keeps.
	// Defaults to 15. Must be at least 1 if specified.
	HistoryDepth int `yaml:"history_depth"`
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// already have an error, skip processing
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// expandStateEnvVars expands environment variables in every string leaf of
// a declared initial state, including nested mappings and sequences.
func expandStateEnvVars(state map[string]any) error {
	for k, v := range state {
		expanded, err := expandStateValue(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		state[k] = expanded
	}
	return nil
}

func expandStateValue(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return expandEnvVars(val)
	case map[string]any:
		if err := expandStateEnvVars(val); err != nil {
			return nil, err
		}
		return val, nil
	case []any:
		for i, elem := range val {
			expanded, err := expandStateValue(elem)
			if err != nil {
				return nil, err
			}
			val[i] = expanded
		}
		return val, nil
	default:
		return val, nil
	}
}

// Load reads and parses a YAML store declaration file.
//
// Environment variables in initial_state string values are expanded.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML store declaration data.
//
// Defaults are applied (empty initial state, history depth 15) and the
// declaration is validated: every store needs a non-empty unique name and a
// positive history depth.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range cfg.Stores {
		sc := &cfg.Stores[i]
		if sc.InitialState == nil {
			sc.InitialState = map[string]any{}
		}
		if sc.HistoryDepth == 0 {
			sc.HistoryDepth = defaultHistoryDepth
		}
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if len(c.Stores) == 0 {
		return fmt.Errorf("at least one store is required")
	}

	seen := make(map[string]int, len(c.Stores))
	for i := range c.Stores {
		sc := &c.Stores[i]

		if sc.Name == "" {
			return fmt.Errorf("stores[%d]: name is required", i)
		}
		if prev, dup := seen[sc.Name]; dup {
			return fmt.Errorf("stores[%d]: duplicate store name %q (first declared at stores[%d])", i, sc.Name, prev)
		}
		seen[sc.Name] = i

		if sc.HistoryDepth < 1 {
			return fmt.Errorf("stores[%d] (%s): history_depth must be at least 1, got %d", i, sc.Name, sc.HistoryDepth)
		}

		if err := expandStateEnvVars(sc.InitialState); err != nil {
			return fmt.Errorf("stores[%d] (%s): initial_state: %w", i, sc.Name, err)
		}
	}

	return nil
}
