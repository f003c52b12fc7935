package history

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one recorded previous state.
//
// The State field is an independent deep copy taken at push time; later
// mutation of the source map never alters it. ID is a random UUID used to
// correlate diagnostic log lines with history entries.
type Snapshot struct {
	ID      string
	TakenAt time.Time
	State   map[string]any
}

// Log is a bounded, most-recent-first snapshot log.
//
// Log keeps at most its configured depth; pushing onto a full log evicts
// the oldest snapshot. Log is not safe for concurrent use; the owning
// store serialises access.
type Log struct {
	depth     int
	snapshots []Snapshot
}

// New creates a Log that keeps at most depth snapshots.
// depth must be >= 1; the caller validates.
func New(depth int) *Log {
	return &Log{
		depth:     depth,
		snapshots: make([]Snapshot, 0, depth),
	}
}

// Push records a deep copy of state as the newest snapshot and returns it.
// If the log is at depth, the oldest snapshot is dropped.
func (l *Log) Push(state map[string]any) Snapshot {
	snap := Snapshot{
		ID:      uuid.NewString(),
		TakenAt: time.Now(),
		State:   deepCopy(state),
	}

	l.snapshots = append(l.snapshots, snap)
	if len(l.snapshots) > l.depth {
		// drop the oldest; shift rather than re-slice so the backing
		// array never grows past depth+1
		copy(l.snapshots, l.snapshots[1:])
		l.snapshots = l.snapshots[:l.depth]
	}
	return snap
}

// States returns deep copies of the recorded states, most recent first.
func (l *Log) States() []map[string]any {
	out := make([]map[string]any, 0, len(l.snapshots))
	for i := len(l.snapshots) - 1; i >= 0; i-- {
		out = append(out, deepCopy(l.snapshots[i].State))
	}
	return out
}

// Len returns the number of recorded snapshots.
func (l *Log) Len() int {
	return len(l.snapshots)
}

// Depth returns the configured maximum number of snapshots.
func (l *Log) Depth() int {
	return l.depth
}

// deepCopy copies a state tree: nested map[string]any and []any values are
// copied recursively, everything else by assignment.
func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = copyValue(v)
	}
	return cp
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopy(val)
	case []any:
		cp := make([]any, len(val))
		for i, elem := range val {
			cp[i] = copyValue(elem)
		}
		return cp
	default:
		return val
	}
}
