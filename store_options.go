package whitelodge

import "log/slog"

// storeConfig holds mutable state during Store construction.
type storeConfig struct {
	initialState State
	logState     bool
	historyDepth int
	logger       *slog.Logger
}

// StoreOption is a function that configures a [Store] during construction.
//
// StoreOption implements the functional options pattern, allowing optional
// configuration to be passed to [NewStore] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithInitialState], [WithStateLogging],
// [WithHistoryDepth], [WithLogger].
type StoreOption func(*storeConfig) error

// WithInitialState sets the state merged into the store at construction.
//
// The initial state is applied through the same mutation path as later
// [Store.SetState] calls, so the first history snapshot (the empty
// pre-initial state) is recorded exactly as for any other update.
// Defaults to an empty mapping.
//
// Example:
//
//	store, err := whitelodge.NewStore("counter",
//	    whitelodge.WithInitialState(whitelodge.State{"count": 0}),
//	)
//
// Returns an error if the value is not a mapping object (nil maps are
// rejected too).
func WithInitialState(initial State) StoreOption {
	return func(cfg *storeConfig) error {
		if !IsMapping(initial) {
			return validationErr("NewStore", "initial state must be a mapping object", initial)
		}
		cfg.initialState = initial
		return nil
	}
}

// WithStateLogging enables or disables the per-mutation diagnostic log line.
//
// When enabled, every successful [Store.SetState] emits a structured log
// entry containing the store name, the snapshot ID of the history entry it
// pushed, and the new state. Defaults to off.
//
// Example:
//
//	store, err := whitelodge.NewStore("session",
//	    whitelodge.WithStateLogging(true),
//	)
func WithStateLogging(enabled bool) StoreOption {
	return func(cfg *storeConfig) error {
		cfg.logState = enabled
		return nil
	}
}

// WithHistoryDepth sets how many previous states the store keeps.
//
// Once the history is full, each mutation evicts the oldest snapshot.
// Defaults to 15 if not specified.
//
// Example:
//
//	store, err := whitelodge.NewStore("editor",
//	    whitelodge.WithHistoryDepth(100),
//	)
//
// Returns an error if depth is less than 1.
func WithHistoryDepth(depth int) StoreOption {
	return func(cfg *storeConfig) error {
		if depth < 1 {
			return validationErr("NewStore", "history depth must be at least 1", depth)
		}
		cfg.historyDepth = depth
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the store's diagnostics.
//
// This allows SDK consumers to control where state-logging lines are
// written and in what format. If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	store, err := whitelodge.NewStore("counter",
//	    whitelodge.WithStateLogging(true),
//	    whitelodge.WithLogger(logger),
//	)
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(cfg *storeConfig) error {
		if logger == nil {
			return validationErr("NewStore", "logger must not be nil", logger)
		}
		cfg.logger = logger
		return nil
	}
}
