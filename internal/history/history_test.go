package history

import "testing"

func TestPush_RecordsMostRecentFirst(t *testing.T) {
	log := New(5)

	log.Push(map[string]any{"i": 0})
	log.Push(map[string]any{"i": 1})
	log.Push(map[string]any{"i": 2})

	states := log.States()
	if len(states) != 3 {
		t.Fatalf("len(States()) = %d, want 3", len(states))
	}
	for idx, want := range []int{2, 1, 0} {
		if states[idx]["i"] != want {
			t.Errorf("States()[%d][i] = %v, want %d", idx, states[idx]["i"], want)
		}
	}
}

func TestPush_EvictsOldestAtDepth(t *testing.T) {
	log := New(3)

	for i := 0; i < 10; i++ {
		log.Push(map[string]any{"i": i})
		if log.Len() > 3 {
			t.Fatalf("Len() = %d after %d pushes, want <= 3", log.Len(), i+1)
		}
	}

	states := log.States()
	if len(states) != 3 {
		t.Fatalf("len(States()) = %d, want 3", len(states))
	}
	for idx, want := range []int{9, 8, 7} {
		if states[idx]["i"] != want {
			t.Errorf("States()[%d][i] = %v, want %d", idx, states[idx]["i"], want)
		}
	}
}

func TestPush_DeepCopiesState(t *testing.T) {
	log := New(5)

	nested := map[string]any{"value": "original"}
	state := map[string]any{"nested": nested, "list": []any{"a"}}
	log.Push(state)

	nested["value"] = "mutated"
	state["list"].([]any)[0] = "mutated"

	got := log.States()[0]
	if got["nested"].(map[string]any)["value"] != "original" {
		t.Errorf("snapshot nested value = %v, want original", got["nested"].(map[string]any)["value"])
	}
	if got["list"].([]any)[0] != "a" {
		t.Errorf("snapshot list[0] = %v, want a", got["list"].([]any)[0])
	}
}

func TestStates_ReturnsCopies(t *testing.T) {
	log := New(5)
	log.Push(map[string]any{"k": "v"})

	first := log.States()[0]
	first["k"] = "tampered"

	if log.States()[0]["k"] != "v" {
		t.Error("States() returned shared maps, want independent copies")
	}
}

func TestPush_SnapshotMetadata(t *testing.T) {
	log := New(2)

	a := log.Push(map[string]any{})
	b := log.Push(map[string]any{})

	if a.ID == "" || b.ID == "" {
		t.Error("snapshot IDs must be non-empty")
	}
	if a.ID == b.ID {
		t.Errorf("snapshot IDs collide: %q", a.ID)
	}
	if a.TakenAt.IsZero() {
		t.Error("TakenAt is zero, want push time")
	}
}

func TestDepth(t *testing.T) {
	log := New(7)
	if log.Depth() != 7 {
		t.Errorf("Depth() = %d, want 7", log.Depth())
	}
	if log.Len() != 0 {
		t.Errorf("Len() = %d, want 0", log.Len())
	}
}
