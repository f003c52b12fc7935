package whitelodge

// Subscriber is the capability a value must implement to observe a [Store].
//
// ReceiveStoreUpdate is invoked synchronously, in subscription order, every
// time a store the subscriber is attached to mutates. The name parameter is
// the store's name and store is the store itself, so one subscriber can
// watch several stores and key its local state by name.
//
// Implementations run inline on the caller of [Store.SetState]: a
// long-running or panicking subscriber delays or aborts the mutation call.
//
// Subscriber values are tracked by identity (==), so implement the
// interface on a pointer type; a non-comparable implementation (e.g. a bare
// func or struct holding a slice) will panic inside Subscribe's duplicate
// check.
type Subscriber interface {
	ReceiveStoreUpdate(name string, store *Store)
}
