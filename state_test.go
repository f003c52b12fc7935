package whitelodge

import "testing"

func TestIsMapping(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"map", map[string]any{"k": 1}, true},
		{"empty map", map[string]any{}, true},
		{"state literal", State{"k": 1}, true},
		{"nil", nil, false},
		{"nil map", map[string]any(nil), false},
		{"slice", []any{1, 2}, false},
		{"string", "state", false},
		{"int", 42, false},
		{"bool", true, false},
		{"wrong key type", map[int]any{1: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMapping(tt.value); got != tt.want {
				t.Errorf("IsMapping(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCloneState_Nil(t *testing.T) {
	if got := CloneState(nil); got != nil {
		t.Errorf("CloneState(nil) = %v, want nil", got)
	}
}

func TestCloneState_NestedMapsAndSlices(t *testing.T) {
	original := State{
		"scalar": 1,
		"nested": map[string]any{"inner": "a"},
		"list":   []any{map[string]any{"item": 1}, "b"},
	}

	cp := CloneState(original)

	// mutate every level of the original
	original["scalar"] = 99
	original["nested"].(map[string]any)["inner"] = "mutated"
	original["list"].([]any)[0].(map[string]any)["item"] = 99
	original["list"].([]any)[1] = "mutated"

	if cp["scalar"] != 1 {
		t.Errorf("clone scalar = %v, want 1", cp["scalar"])
	}
	if cp["nested"].(map[string]any)["inner"] != "a" {
		t.Errorf("clone nested = %v, want a", cp["nested"].(map[string]any)["inner"])
	}
	list := cp["list"].([]any)
	if list[0].(map[string]any)["item"] != 1 {
		t.Errorf("clone list[0] = %v, want 1", list[0])
	}
	if list[1] != "b" {
		t.Errorf("clone list[1] = %v, want b", list[1])
	}
}
