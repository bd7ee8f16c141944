package enum

import (
	"fmt"
	"slices"
	"strings"
)

// Flavor selects what [Enumeration.Get] resolves to.
type Flavor int

const (
	// Plain enumerations resolve a name to its stored value.
	Plain Flavor = iota
	// SelfNaming enumerations resolve a name to the name itself.
	SelfNaming
)

func (f Flavor) String() string {
	switch f {
	case Plain:
		return "plain"
	case SelfNaming:
		return "self-naming"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Member is one named constant of an enumeration.
type Member[V comparable] struct {
	Name  string
	Value V
}

// M is shorthand for declaring a [Member].
func M[V comparable](name string, value V) Member[V] {
	return Member[V]{Name: name, Value: value}
}

// Choice is a (name, value) pair suitable for populating selection controls.
type Choice[V comparable] struct {
	Name  string
	Value V
}

// Option configures [New].
type Option func(*options)

type options struct {
	flavor       Flavor
	uniqueValues bool
}

// WithFlavor selects the enumeration flavor. The default is [Plain].
func WithFlavor(f Flavor) Option {
	return func(o *options) { o.flavor = f }
}

// UniqueValues makes [New] reject two members sharing the same value.
func UniqueValues() Option {
	return func(o *options) { o.uniqueValues = true }
}

// Enumeration is a fixed, ordered mapping from symbolic names to values.
//
// An Enumeration is immutable after [New] and safe for concurrent use.
type Enumeration[V comparable] struct {
	typeName string
	flavor   Flavor

	names   []string
	values  []V
	byName  map[string]int
	byValue map[V]int
}

// New builds an enumeration named typeName from members, keeping declaration order.
//
// Every member name must be non-empty, upper case and must not start with an
// underscore. Names must be unique; values must be unique when [UniqueValues] is set.
func New[V comparable](typeName string, members []Member[V], opts ...Option) (*Enumeration[V], error) {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return nil, ErrEmptyType
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	e := &Enumeration[V]{
		typeName: typeName,
		flavor:   o.flavor,
		names:    make([]string, 0, len(members)),
		values:   make([]V, 0, len(members)),
		byName:   make(map[string]int, len(members)),
		byValue:  make(map[V]int, len(members)),
	}

	for _, m := range members {
		if !IsName(m.Name) {
			return nil, fmt.Errorf("%w: %s.%q", ErrInvalidName, typeName, m.Name)
		}
		if _, exists := e.byName[m.Name]; exists {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateName, typeName, m.Name)
		}
		if prev, exists := e.byValue[m.Value]; exists {
			if o.uniqueValues {
				return nil, fmt.Errorf("%w: %s.%s and %s.%s both hold %v",
					ErrDuplicateValue, typeName, e.names[prev], typeName, m.Name, m.Value)
			}
		} else {
			e.byValue[m.Value] = len(e.names)
		}

		e.byName[m.Name] = len(e.names)
		e.names = append(e.names, m.Name)
		e.values = append(e.values, m.Value)
	}

	return e, nil
}

// MustNew is like [New] but panics on error. Use it for package-level tables.
func MustNew[V comparable](typeName string, members []Member[V], opts ...Option) *Enumeration[V] {
	e, err := New(typeName, members, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// IsName reports whether s qualifies as an enumeration member name.
func IsName(s string) bool {
	return s != "" &&
		!strings.HasPrefix(s, "_") &&
		strings.ToUpper(s) == s
}

// Type returns the enumeration type name used in error messages.
func (e *Enumeration[V]) Type() string { return e.typeName }

// Flavor returns the flavor the enumeration was built with.
func (e *Enumeration[V]) Flavor() Flavor { return e.flavor }

// Len returns the number of members.
func (e *Enumeration[V]) Len() int { return len(e.names) }

// Names returns all member names in declaration order.
func (e *Enumeration[V]) Names() []string {
	return slices.Clone(e.names)
}

// Values returns all member values, index-aligned with [Enumeration.Names].
func (e *Enumeration[V]) Values() []V {
	return slices.Clone(e.values)
}

// Members returns a name to value map of every member.
func (e *Enumeration[V]) Members() map[string]V {
	out := make(map[string]V, len(e.names))
	for i, name := range e.names {
		out[name] = e.values[i]
	}
	return out
}

// Choices returns (name, value) pairs in declaration order.
func (e *Enumeration[V]) Choices() []Choice[V] {
	out := make([]Choice[V], len(e.names))
	for i, name := range e.names {
		out[i] = Choice[V]{Name: name, Value: e.values[i]}
	}
	return out
}

// Has reports whether name is a member.
func (e *Enumeration[V]) Has(name string) bool {
	_, ok := e.byName[name]
	return ok
}

// FromName returns the value bound to name.
func (e *Enumeration[V]) FromName(name string) (V, error) {
	i, ok := e.byName[name]
	if !ok {
		var zero V
		return zero, &LookupError{Type: e.typeName, Name: name}
	}
	return e.values[i], nil
}

// GetValue returns the stored value of name regardless of flavor.
func (e *Enumeration[V]) GetValue(name string) (V, error) {
	return e.FromName(name)
}

// Get resolves name according to the enumeration flavor. For [SelfNaming]
// enumerations the result is the name itself; for [Plain] ones it is the
// stored value formatted with %v.
func (e *Enumeration[V]) Get(name string) (string, error) {
	i, ok := e.byName[name]
	if !ok {
		return "", &LookupError{Type: e.typeName, Name: name}
	}
	if e.flavor == SelfNaming {
		return name, nil
	}
	return fmt.Sprint(e.values[i]), nil
}

// NameOf returns the first declared name holding value.
func (e *Enumeration[V]) NameOf(value V) (string, error) {
	i, ok := e.byValue[value]
	if !ok {
		return "", &LookupError{Type: e.typeName, Name: fmt.Sprint(value), ByValue: true}
	}
	return e.names[i], nil
}
