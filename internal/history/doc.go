// Package history provides the bounded snapshot log backing a store's
// previous-state buffer.
//
// Each push records an independent deep copy of the state together with a
// snapshot ID and timestamp. The log keeps at most its configured depth,
// evicting the oldest snapshot first; reads are most-recent-first.
//
// This package is internal to whitelodge. Users of the library interact
// with history through [whitelodge.Store.PreviousStates].
package history
