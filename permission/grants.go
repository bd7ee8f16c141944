package permission

import (
	"maps"
	"slices"
)

// Grants maps permission names to a granted flag. A name missing from the map
// is denied, exactly as if it were present with false.
type Grants map[string]bool

// Source is anything that exposes a permission map, such as [Grants] or a
// compiled role.
type Source interface {
	PermissionMap() Grants
}

// PermissionMap returns g itself so a literal map can be passed to [Merge].
func (g Grants) PermissionMap() Grants { return g }

// Allows reports whether name is granted. Absent keys are denied.
func (g Grants) Allows(name string) bool {
	return g[name]
}

// Clone returns an independent copy of g.
func (g Grants) Clone() Grants {
	if g == nil {
		return Grants{}
	}
	return maps.Clone(g)
}

// Granted returns the names mapped to true, sorted.
func (g Grants) Granted() []string {
	out := make([]string, 0, len(g))
	for name, ok := range g {
		if ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Denied returns the names explicitly mapped to false, sorted.
func (g Grants) Denied() []string {
	out := make([]string, 0, len(g))
	for name, ok := range g {
		if !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both maps hold the same keys with the same flags.
func (g Grants) Equal(other Grants) bool {
	return maps.Equal(g, other)
}

// Merge returns the key-wise union of every source. On key collision the later
// source wins. Nil sources are skipped and no input is modified.
func Merge(sources ...Source) Grants {
	out := make(Grants)
	for _, src := range sources {
		if src == nil {
			continue
		}
		for name, ok := range src.PermissionMap() {
			out[name] = ok
		}
	}
	return out
}

// DenyAll maps every name to false.
func DenyAll(names []string) Grants {
	out := make(Grants, len(names))
	for _, name := range names {
		out[name] = false
	}
	return out
}
