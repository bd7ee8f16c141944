package permission

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestRegistryAssignsBitsInOrder(t *testing.T) {
	r, err := NewRegistry(64, false)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.RegisterAll([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	for i, name := range []string{"a", "b", "c"} {
		bit, ok := r.Bit(name)
		if !ok || bit != i {
			t.Fatalf("Bit(%s) = %d, %v; want %d", name, bit, ok, i)
		}
		back, ok := r.Name(i)
		if !ok || back != name {
			t.Fatalf("Name(%d) = %s, %v; want %s", i, back, ok, name)
		}
	}
	if got := r.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("Names() = %v", got)
	}
	if _, ok := r.Name(3); ok {
		t.Fatal("Name(3) should be unassigned")
	}
	if _, ok := r.Name(-1); ok {
		t.Fatal("Name(-1) should be unassigned")
	}
	if r.Capacity() != 61 {
		t.Fatalf("Capacity() = %d, want 61", r.Capacity())
	}
}

func TestRegistryRejects(t *testing.T) {
	r, _ := NewRegistry(64, false)
	if _, err := r.Register(""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("empty name error = %v", err)
	}
	if _, err := r.Register("a"); err != nil {
		t.Fatalf("Register(a): %v", err)
	}
	if _, err := r.Register("a"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate error = %v", err)
	}

	r.Freeze()
	if !r.Frozen() {
		t.Fatal("Frozen() should be true after Freeze")
	}
	if _, err := r.Register("b"); !errors.Is(err, ErrRegistryFrozen) {
		t.Fatalf("frozen error = %v", err)
	}
}

func TestRegistryWidthLimits(t *testing.T) {
	if _, err := NewRegistry(100, false); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}

	r, _ := NewRegistry(64, true)
	for i := 0; i < 63; i++ {
		if _, err := r.Register(fmt.Sprintf("p%d", i)); err != nil {
			t.Fatalf("Register(p%d): %v", i, err)
		}
	}
	if _, err := r.Register("overflow"); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded with root reserved, got %v", err)
	}
	if bit, ok := r.RootBit(); !ok || bit != 63 {
		t.Fatalf("RootBit() = %d, %v", bit, ok)
	}

	r2, _ := NewRegistry(64, false)
	for i := 0; i < 64; i++ {
		if _, err := r2.Register(fmt.Sprintf("p%d", i)); err != nil {
			t.Fatalf("Register(p%d): %v", i, err)
		}
	}
	if _, err := r2.Register("overflow"); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if _, ok := r2.RootBit(); ok {
		t.Fatal("RootBit() should be unset without reservation")
	}
}
