// Package whitelodge provides small, observable state containers: named
// stores that hold a mutable mapping, record a bounded history of previous
// snapshots, and notify subscribers synchronously on every change.
//
// whitelodge is designed as an SDK-first library. Stores are plain values
// constructed with functional options, collected into an explicit
// [Registry] for discovery by name, and observed through the [Subscriber]
// interface. There is no middleware pipeline, no asynchronous dispatch, and
// no persistence, just state, history, and ordered notification.
//
// # Quick Start
//
// Create a store, subscribe to it, and mutate it:
//
//	counter, err := whitelodge.NewStore("counter",
//	    whitelodge.WithInitialState(whitelodge.State{"count": 0}),
//	)
//	if err != nil {
//	    slog.Error("failed to create store", "error", err)
//	    os.Exit(1)
//	}
//
//	counter.Subscribe(view) // view implements whitelodge.Subscriber
//
//	counter.SetState(whitelodge.State{"count": 1})
//	// view.ReceiveStoreUpdate("counter", counter) has already run
//
// # Configuration
//
// Stores use the functional options pattern:
//
//	store, err := whitelodge.NewStore("session",
//	    whitelodge.WithInitialState(whitelodge.State{"user": nil}),
//	    whitelodge.WithHistoryDepth(50),
//	    whitelodge.WithStateLogging(true),
//	    whitelodge.WithLogger(logger),
//	)
//
// # Registry and Bindings
//
// A [Registry] maps store names to stores and is built once from the full
// store set; duplicate names are rejected at construction:
//
//	reg, err := whitelodge.NewRegistry(counter, session)
//
// A [Binding] attaches one subscriber to several stores by name, seeding it
// with each store's current value, and detaches them all at once:
//
//	binding, err := whitelodge.NewBinding(reg, view, "counter", "session")
//	defer binding.Detach()
//
// # Semantics
//
// Every mutation follows the same strict order: snapshot the pre-mutation
// state into the bounded history, shallow-merge the new keys, then notify
// subscribers one at a time in subscription order. Snapshots are deep
// copies; later mutation never alters recorded history. All validation is
// fail-fast: invalid input is rejected at the call site with the offending
// value attached to the error (see [ValidationError]), and nothing is
// partially applied.
//
// # Architecture
//
// The module consists of this package plus:
//
//   - internal/history: bounded most-recent-first snapshot log
//   - config: YAML store declarations for the standalone CLI
//   - cmd/whitelodge: CLI for validating and inspecting declaration files
//
// The internal packages are not part of the public API and may change
// without notice.
package whitelodge
