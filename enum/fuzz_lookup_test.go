package enum

import (
	"errors"
	"testing"
)

// FuzzFromName checks that lookups either hit a declared member or fail with a
// LookupError carrying the requested name. No zero-value fallbacks.
func FuzzFromName(f *testing.F) {
	e := MustNew("Fuzz", []Member[string]{
		M("ALPHA", "alpha"),
		M("BETA", "beta"),
		M("GAMMA_1", "gamma_1"),
	})

	f.Add("ALPHA")
	f.Add("alpha")
	f.Add("")
	f.Add("_ALPHA")
	f.Add("GAMMA_1 ")

	f.Fuzz(func(t *testing.T, name string) {
		v, err := e.FromName(name)
		if e.Has(name) {
			if err != nil {
				t.Fatalf("FromName(%q) failed for a member: %v", name, err)
			}
			back, err := e.NameOf(v)
			if err != nil || back != name {
				t.Fatalf("NameOf(%q) = %q, %v; want %q", v, back, err, name)
			}
			return
		}

		var lerr *LookupError
		if !errors.As(err, &lerr) {
			t.Fatalf("FromName(%q) = %q, %v; want *LookupError", name, v, err)
		}
		if lerr.Name != name || lerr.Type != "Fuzz" {
			t.Fatalf("lookup error fields = %+v", lerr)
		}
	})
}
