package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/whitelodge"
)

// consoleView is a minimal subscriber: it re-renders whenever a store it
// watches changes.
type consoleView struct {
	latest map[string]*whitelodge.Store
}

func (v *consoleView) ReceiveStoreUpdate(name string, store *whitelodge.Store) {
	v.latest[name] = store
	fmt.Printf("  [view] %s -> %v\n", name, store.State())
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	counter, err := whitelodge.NewStore("counter",
		whitelodge.WithInitialState(whitelodge.State{"count": 0}),
		whitelodge.WithHistoryDepth(5),
		whitelodge.WithStateLogging(true),
		whitelodge.WithLogger(logger),
	)
	if err != nil {
		slog.Error("failed to create store", "error", err)
		os.Exit(1)
	}

	session, err := whitelodge.NewStore("session",
		whitelodge.WithInitialState(whitelodge.State{"user": "alice"}),
	)
	if err != nil {
		slog.Error("failed to create store", "error", err)
		os.Exit(1)
	}

	reg, err := whitelodge.NewRegistry(counter, session)
	if err != nil {
		slog.Error("failed to build registry", "error", err)
		os.Exit(1)
	}

	view := &consoleView{latest: make(map[string]*whitelodge.Store)}
	binding, err := whitelodge.NewBinding(reg, view, "counter", "session")
	if err != nil {
		slog.Error("failed to bind view", "error", err)
		os.Exit(1)
	}
	defer binding.Detach()

	fmt.Println("mutating counter:")
	for i := 1; i <= 3; i++ {
		if err := counter.SetState(whitelodge.State{"count": i}); err != nil {
			slog.Error("failed to set state", "error", err)
			os.Exit(1)
		}
	}

	fmt.Println("history (most recent first):")
	for _, prev := range counter.PreviousStates() {
		fmt.Printf("  %v\n", prev)
	}
}
