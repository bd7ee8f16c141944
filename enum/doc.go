// Package enum provides a generic, immutable enumeration of named constants.
//
// An [Enumeration] is built once from an ordered list of members and can then be
// queried by name, by value, or listed in declaration order. Lookups of undefined
// names always fail with a [*LookupError]; they never fall back to a zero value.
//
// # Flavors
//
// A [Plain] enumeration resolves [Enumeration.Get] to the stored value. A
// [SelfNaming] enumeration resolves [Enumeration.Get] to the member's own name,
// so callers that key maps by symbol get the symbol back; the stored value is
// then read with [Enumeration.GetValue]. Every other accessor returns stored
// values for both flavors.
//
// # What this package must NOT do
//
//   - Mutate an enumeration after [New] returns.
//   - Silently skip malformed member names; construction fails instead.
package enum
