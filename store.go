package whitelodge

import (
	"log/slog"
	"sync"

	"github.com/jpalmerr/whitelodge/internal/history"
)

const defaultHistoryDepth = 15

// Store is a named container of observable state.
//
// A Store owns one mapping-shaped state value, a bounded history of deep
// copies of its previous states, and an ordered list of subscribers that
// are notified synchronously on every mutation. Stores are created with
// [NewStore] and mutated exclusively through [Store.SetState]; the name is
// immutable after construction.
//
// Stores may be shared across goroutines: internal structures are guarded
// by a mutex. The notification protocol itself stays synchronous: every
// subscriber runs to completion, in subscription order, before SetState
// returns.
//
// The typical lifecycle is:
//
//	counter, err := whitelodge.NewStore("counter",
//	    whitelodge.WithInitialState(whitelodge.State{"count": 0}),
//	)
//	if err != nil {
//	    slog.Error("failed to create store", "error", err)
//	    os.Exit(1)
//	}
//
//	counter.Subscribe(view)                         // view implements Subscriber
//	counter.SetState(whitelodge.State{"count": 1})  // view is notified inline
type Store struct {
	name     string
	logger   *slog.Logger
	logState bool

	mu          sync.Mutex
	state       State
	history     *history.Log
	subscribers []Subscriber
}

// NewStore creates a [Store] with the given name and options.
//
// The name is the store's identity: it keys the store inside a [Registry]
// and is passed to subscribers on every notification. It must be non-empty.
//
// Options are applied in order and have sensible defaults:
//   - Initial state: empty (see [WithInitialState])
//   - History depth: 15 (see [WithHistoryDepth])
//   - State logging: off (see [WithStateLogging])
//   - Logger: [slog.Default] (see [WithLogger])
//
// The initial state is applied through the same path as later mutations,
// so immediately after construction the history holds exactly one snapshot:
// the empty pre-initial state.
//
// Returns a [*ValidationError] if the name is empty or any option is
// invalid; the store is not created and nothing is registered.
//
// Example:
//
//	store, err := whitelodge.NewStore("session",
//	    whitelodge.WithInitialState(whitelodge.State{"user": nil}),
//	    whitelodge.WithHistoryDepth(50),
//	    whitelodge.WithStateLogging(true),
//	)
func NewStore(name string, opts ...StoreOption) (*Store, error) {
	if name == "" {
		return nil, validationErr("NewStore", "store name must be a non-empty string", name)
	}

	cfg := &storeConfig{
		initialState: State{},
		historyDepth: defaultHistoryDepth,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		name:     name,
		logger:   logger,
		logState: cfg.logState,
		state:    State{},
		history:  history.New(cfg.historyDepth),
	}

	// seed through the normal mutation path so the first snapshot and the
	// merge semantics are identical to every later update
	if err := s.SetState(cfg.initialState); err != nil {
		return nil, err
	}
	return s, nil
}

// SetState merges newState into the store's state and notifies subscribers.
//
// SetState is the sole mutation entry point. In order, it:
//  1. pushes a deep-copied snapshot of the pre-mutation state onto the
//     history, evicting the oldest entry past the configured depth
//  2. shallow-merges newState's keys into the current state (existing keys
//     overwritten, new keys added, absent keys untouched)
//  3. notifies every subscriber synchronously, in subscription order, via
//     ReceiveStoreUpdate(name, store); each callback runs to completion
//     before the next starts and before SetState returns
//  4. if state logging is enabled, emits a diagnostic log line with the
//     store name, snapshot ID, and the new state
//
// Subscribers always observe the fully merged state. A panic inside a
// subscriber is not recovered: it propagates to the SetState caller and
// aborts the remaining notifications.
//
// Returns a [*ValidationError] if newState is not a mapping object; the
// state, history, and subscribers are untouched on error.
func (s *Store) SetState(newState State) error {
	if !IsMapping(newState) {
		return validationErr("SetState", "new state must be a mapping object", newState)
	}

	s.mu.Lock()
	snap := s.history.Push(s.state)
	mergeState(s.state, newState)

	// snapshot the subscriber list so callbacks run outside the lock,
	// keeping re-entrant reads (store.State() from a subscriber) legal
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.ReceiveStoreUpdate(s.name, s)
	}

	if s.logState {
		s.logger.Info("store state updated",
			"store", s.name,
			"snapshot_id", snap.ID,
			"state", s.State(),
		)
	}
	return nil
}

// Subscribe appends sub to the store's subscriber list.
//
// Subscribers are notified in subscription order. Subscribing the same
// value twice (identity equality, ==) is a usage error, not a no-op:
// Subscribe returns an error wrapping [ErrDuplicateSubscriber] and the
// list is unchanged. A nil subscriber is likewise rejected.
func (s *Store) Subscribe(sub Subscriber) error {
	if sub == nil {
		return validationErr("Subscribe", "subscriber must not be nil", sub)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subscribers {
		if existing == sub {
			return &ValidationError{
				Op:     "Subscribe",
				Reason: "subscriber is already subscribed to store " + s.name,
				Value:  sub,
				Err:    ErrDuplicateSubscriber,
			}
		}
	}

	s.subscribers = append(s.subscribers, sub)
	return nil
}

// Unsubscribe removes sub from the store's subscriber list.
//
// The first identity-equal (==) match is removed; later notifications no
// longer reach it. Unsubscribing a value that is not subscribed is a no-op,
// not an error.
func (s *Store) Unsubscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.subscribers {
		if existing == sub {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// Name returns the store's immutable name.
func (s *Store) Name() string {
	return s.name
}

// State returns a deep copy of the store's current state.
//
// The returned map is independent: mutating it does not affect the store.
// Use [Store.SetState] to change the store's state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneState(s.state)
}

// PreviousStates returns deep copies of the recorded previous states, most
// recent first. The slice never exceeds [Store.HistoryDepth] entries, and
// its first element is the state as it was immediately before the most
// recent mutation.
func (s *Store) PreviousStates() []State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.States()
}

// HistoryDepth returns the maximum number of previous states kept.
func (s *Store) HistoryDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Depth()
}

// SubscriberCount returns the number of currently attached subscribers.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}
