package whitelodge

import "sort"

// Registry is a name-indexed lookup table of [Store] instances.
//
// A Registry is built once from a set of stores and is read-only after
// construction; replacing a program's store set means building a fresh
// Registry. It is an explicit value threaded through the application rather
// than a process-wide slot, so independent parts of a program discover
// stores by name via whatever Registry they are handed.
type Registry struct {
	stores map[string]*Store
	order  []string
}

// NewRegistry builds a [Registry] from the given stores.
//
// Every store must be non-nil and store names must be unique; the first
// duplicate encountered wins the error (wrapping [ErrDuplicateStore]) and
// no registry is published. The input order is irrelevant once built:
// lookups are by name.
//
// Example:
//
//	reg, err := whitelodge.NewRegistry(counter, session)
//	if err != nil {
//	    slog.Error("failed to build registry", "error", err)
//	    os.Exit(1)
//	}
func NewRegistry(stores ...*Store) (*Registry, error) {
	byName := make(map[string]*Store, len(stores))
	order := make([]string, 0, len(stores))

	for i, store := range stores {
		if store == nil {
			return nil, validationErr("NewRegistry", "store must not be nil", i)
		}
		if _, exists := byName[store.Name()]; exists {
			return nil, &ValidationError{
				Op:     "NewRegistry",
				Reason: "duplicate store name",
				Value:  store.Name(),
				Err:    ErrDuplicateStore,
			}
		}
		byName[store.Name()] = store
		order = append(order, store.Name())
	}

	sort.Strings(order)
	return &Registry{stores: byName, order: order}, nil
}

// Lookup returns the store registered under name, and whether one exists.
func (r *Registry) Lookup(name string) (*Store, bool) {
	store, ok := r.stores[name]
	return store, ok
}

// Names returns the registered store names in sorted order.
// The returned slice is a copy; modifying it does not affect the registry.
func (r *Registry) Names() []string {
	cp := make([]string, len(r.order))
	copy(cp, r.order)
	return cp
}

// Len returns the number of registered stores.
func (r *Registry) Len() int {
	return len(r.stores)
}
