package whitelodge

import (
	"errors"
	"testing"
)

func TestNewRegistry_LookupReturnsSameInstance(t *testing.T) {
	storeA, _ := NewStore("storeA")
	storeB, _ := NewStore("storeB")

	reg, err := NewRegistry(storeA, storeB)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	got, ok := reg.Lookup("storeA")
	if !ok {
		t.Fatal("Lookup(storeA) not found")
	}
	if got != storeA {
		t.Error("Lookup(storeA) returned a different instance")
	}

	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) = found, want not found")
	}
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	storeA, _ := NewStore("storeA")
	storeA2, _ := NewStore("storeA") // same name, different instance

	_, err := NewRegistry(storeA, storeA2)
	if err == nil {
		t.Fatal("NewRegistry() expected error for duplicate name, got nil")
	}
	if !errors.Is(err, ErrDuplicateStore) {
		t.Errorf("NewRegistry() error = %v, want ErrDuplicateStore", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewRegistry() error type = %T, want *ValidationError", err)
	}
	if verr.Value != "storeA" {
		t.Errorf("Value = %v, want storeA", verr.Value)
	}
}

func TestNewRegistry_NilStore(t *testing.T) {
	storeA, _ := NewStore("storeA")

	_, err := NewRegistry(storeA, nil)
	if err == nil {
		t.Fatal("NewRegistry() expected error for nil store, got nil")
	}
}

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
	if len(reg.Names()) != 0 {
		t.Errorf("Names() = %v, want empty", reg.Names())
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	c, _ := NewStore("charlie")
	a, _ := NewStore("alpha")
	b, _ := NewStore("bravo")

	reg, err := NewRegistry(c, a, b)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	names := reg.Names()
	want := []string{"alpha", "bravo", "charlie"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// returned slice is a copy
	names[0] = "tampered"
	if reg.Names()[0] != "alpha" {
		t.Error("Names() slice is shared, want copy")
	}
}
