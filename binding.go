package whitelodge

// Binding attaches one [Subscriber] to a set of named stores.
//
// Binding is the glue used by UI-layer integrations: given a [Registry] and
// a list of store names, it subscribes the target to each store and seeds
// it with one initial update per store, so the target holds the current
// store values under their names before any mutation happens. Each Binding
// is an independent attachment: mounting the same component type twice
// means two Subscriber values and two Bindings.
//
// A Binding is created attached; call [Binding.Detach] to release it.
type Binding struct {
	sub      Subscriber
	attached []*Store
}

// NewBinding subscribes sub to every named store in reg and returns the
// live attachment.
//
// For each name, in order, the store is looked up in the registry and
// sub is subscribed to it, then seeded with one synchronous
// ReceiveStoreUpdate(name, store) call carrying the store's current value.
//
// Fails with a [*ValidationError] if sub is nil, a name has no store in the
// registry (wrapping [ErrUnknownStore]), or sub is already subscribed to
// one of the stores (wrapping [ErrDuplicateSubscriber]). On failure any
// subscriptions already made by this call are rolled back, so a failed
// NewBinding leaves every store untouched.
func NewBinding(reg *Registry, sub Subscriber, names ...string) (*Binding, error) {
	if reg == nil {
		return nil, validationErr("NewBinding", "registry must not be nil", reg)
	}
	if sub == nil {
		return nil, validationErr("NewBinding", "subscriber must not be nil", sub)
	}

	b := &Binding{sub: sub}
	for _, name := range names {
		store, ok := reg.Lookup(name)
		if !ok {
			b.Detach()
			return nil, &ValidationError{
				Op:     "NewBinding",
				Reason: "no store with that name in the registry",
				Value:  name,
				Err:    ErrUnknownStore,
			}
		}
		if err := store.Subscribe(sub); err != nil {
			b.Detach()
			return nil, err
		}
		b.attached = append(b.attached, store)

		// seed the subscriber with the store's current value
		sub.ReceiveStoreUpdate(name, store)
	}
	return b, nil
}

// Stores returns the stores this binding is attached to, in attachment
// order. The returned slice is a copy.
func (b *Binding) Stores() []*Store {
	cp := make([]*Store, len(b.attached))
	copy(cp, b.attached)
	return cp
}

// Detach unsubscribes the bound subscriber from every attached store.
// Detach is idempotent; calling it on an already-detached binding is a
// no-op.
func (b *Binding) Detach() {
	for _, store := range b.attached {
		store.Unsubscribe(b.sub)
	}
	b.attached = nil
}
