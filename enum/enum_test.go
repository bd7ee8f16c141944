package enum

import (
	"errors"
	"slices"
	"testing"
)

func newXY(t *testing.T, opts ...Option) *Enumeration[string] {
	t.Helper()
	e, err := New("Sample", []Member[string]{
		M("X", "x_value"),
		M("Y", "y_value"),
	}, opts...)
	if err != nil {
		t.Fatalf("new enumeration: %v", err)
	}
	return e
}

func TestEnumerationDeclaredOrder(t *testing.T) {
	e := newXY(t)

	if got, want := e.Names(), []string{"X", "Y"}; !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if got, want := e.Values(), []string{"x_value", "y_value"}; !slices.Equal(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
}

func TestEnumerationFromNameUnknown(t *testing.T) {
	e := newXY(t)

	v, err := e.FromName("Z")
	if err == nil {
		t.Fatalf("expected lookup error, got value %q", v)
	}
	if v != "" {
		t.Fatalf("failed lookup returned %q, want zero value", v)
	}
	if !errors.Is(err, ErrNoSuchMember) {
		t.Fatalf("expected ErrNoSuchMember, got %v", err)
	}

	var lerr *LookupError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if lerr.Type != "Sample" || lerr.Name != "Z" {
		t.Fatalf("unexpected error fields: %+v", lerr)
	}
	if got, want := err.Error(), "Sample has no enumerated value named Z"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestEnumerationFromNameUnknownUpperX(t *testing.T) {
	e := newXY(t)
	if _, err := e.FromName("UNKNOWN_X"); !errors.Is(err, ErrNoSuchMember) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestEnumerationMutualConsistency(t *testing.T) {
	e := MustNew("Colors", []Member[int]{
		M("RED", 1),
		M("GREEN", 2),
		M("BLUE", 3),
	})

	names := e.Names()
	members := e.Members()
	values := e.Values()

	if len(names) != len(members) || len(names) != len(values) {
		t.Fatalf("length mismatch: names=%d members=%d values=%d", len(names), len(members), len(values))
	}
	for i, n := range names {
		if members[n] != values[i] {
			t.Fatalf("values()[%d]=%d but members()[%s]=%d", i, values[i], n, members[n])
		}
		v, err := e.FromName(n)
		if err != nil || v != values[i] {
			t.Fatalf("FromName(%s) = %d, %v", n, v, err)
		}
	}

	choices := e.Choices()
	for i, c := range choices {
		if c.Name != names[i] || c.Value != values[i] {
			t.Fatalf("choice %d = %+v, want (%s, %d)", i, c, names[i], values[i])
		}
	}
}

func TestEnumerationReturnsCopies(t *testing.T) {
	e := newXY(t)

	names := e.Names()
	names[0] = "MUTATED"
	values := e.Values()
	values[0] = "mutated"
	members := e.Members()
	members["X"] = "mutated"

	if v, _ := e.FromName("X"); v != "x_value" {
		t.Fatalf("enumeration was mutated through accessor copy: %q", v)
	}
	if e.Names()[0] != "X" {
		t.Fatal("names slice was mutated through accessor copy")
	}
}

func TestEnumerationFlavors(t *testing.T) {
	plain := newXY(t)
	self := newXY(t, WithFlavor(SelfNaming))

	if got, _ := plain.Get("X"); got != "x_value" {
		t.Fatalf("plain Get(X) = %q, want x_value", got)
	}
	if got, _ := self.Get("X"); got != "X" {
		t.Fatalf("self-naming Get(X) = %q, want X", got)
	}
	if got, _ := self.GetValue("X"); got != "x_value" {
		t.Fatalf("self-naming GetValue(X) = %q, want x_value", got)
	}
	if got, _ := self.FromName("Y"); got != "y_value" {
		t.Fatalf("self-naming FromName(Y) = %q, want y_value", got)
	}
	if !slices.Equal(self.Values(), plain.Values()) {
		t.Fatal("flavor must not change Values()")
	}
	if _, err := self.Get("Z"); !errors.Is(err, ErrNoSuchMember) {
		t.Fatalf("self-naming Get(Z) should fail, got %v", err)
	}
	if self.Flavor().String() != "self-naming" || plain.Flavor().String() != "plain" {
		t.Fatalf("unexpected flavor strings: %s / %s", self.Flavor(), plain.Flavor())
	}
}

func TestEnumerationNameOf(t *testing.T) {
	e := newXY(t)

	name, err := e.NameOf("y_value")
	if err != nil || name != "Y" {
		t.Fatalf("NameOf(y_value) = %q, %v", name, err)
	}

	_, err = e.NameOf("nope")
	var lerr *LookupError
	if !errors.As(err, &lerr) || !lerr.ByValue {
		t.Fatalf("expected by-value lookup error, got %v", err)
	}
}

func TestNewRejectsMalformedMembers(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		members []Member[string]
		opts    []Option
		want    error
	}{
		{
			name:    "blank type",
			typ:     "  ",
			members: []Member[string]{M("A", "a")},
			want:    ErrEmptyType,
		},
		{
			name:    "lower case name",
			typ:     "T",
			members: []Member[string]{M("lower", "a")},
			want:    ErrInvalidName,
		},
		{
			name:    "underscore prefix",
			typ:     "T",
			members: []Member[string]{M("_HIDDEN", "a")},
			want:    ErrInvalidName,
		},
		{
			name:    "empty name",
			typ:     "T",
			members: []Member[string]{M("", "a")},
			want:    ErrInvalidName,
		},
		{
			name:    "duplicate name",
			typ:     "T",
			members: []Member[string]{M("A", "a"), M("A", "b")},
			want:    ErrDuplicateName,
		},
		{
			name:    "duplicate value with unique option",
			typ:     "T",
			members: []Member[string]{M("A", "a"), M("B", "a")},
			opts:    []Option{UniqueValues()},
			want:    ErrDuplicateValue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.typ, tc.members, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewAllowsSharedValuesByDefault(t *testing.T) {
	e, err := New("T", []Member[string]{M("A", "a"), M("B", "a")})
	if err != nil {
		t.Fatalf("shared values should be allowed without UniqueValues: %v", err)
	}
	if name, _ := e.NameOf("a"); name != "A" {
		t.Fatalf("NameOf should resolve to the first declared name, got %q", name)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustNew to panic on invalid member")
		}
	}()
	MustNew("T", []Member[int]{M("bad", 1)})
}

func TestEmptyEnumeration(t *testing.T) {
	e, err := New[string]("Empty", nil)
	if err != nil {
		t.Fatalf("empty enumeration should be valid: %v", err)
	}
	if len(e.Names()) != 0 || len(e.Values()) != 0 || len(e.Members()) != 0 {
		t.Fatal("empty enumeration should have no members")
	}
}
