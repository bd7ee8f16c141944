package goRoles

import (
	"strings"
	"testing"

	"cdr.dev/slog/v3/sloggers/slogtest"

	"github.com/MrEthical07/goRoles/enum"
	"github.com/MrEthical07/goRoles/permission"
)

var testPermissions = enum.MustNew("TestPermission", []enum.Member[string]{
	enum.M("FLOWS_VIEW", "flows_view"),
	enum.M("FLOWS_EDIT", "flows_edit"),
	enum.M("USERS_VIEW", "users_view"),
	enum.M("USERS_EDIT", "users_edit"),
	enum.M("BILLING_VIEW", "billing_view"),
}, enum.WithFlavor(enum.SelfNaming), enum.UniqueValues())

// newTestBuilder declares viewer -> editor -> admin plus a deny-all custom role.
func newTestBuilder(t *testing.T) *Builder {
	t.Helper()

	return New().
		WithLogger(slogtest.Make(t, &slogtest.Options{IgnoreErrors: true})).
		WithPermissions(testPermissions).
		WithDenyAllRole("custom", "Blank slate.").
		WithRole(RoleSpec{
			Name: "viewer",
			Grants: permission.Grants{
				"flows_view": true,
				"users_view": true,
			},
		}).
		WithRole(RoleSpec{
			Name:    "editor",
			Parents: []string{"viewer"},
			Grants: permission.Grants{
				"flows_edit": true,
			},
		}).
		WithRole(RoleSpec{
			Name:    "admin",
			Parents: []string{"editor"},
			Grants: permission.Grants{
				"users_edit":   true,
				"billing_view": true,
			},
		}).
		WithGroup("frontend", "custom", "admin", "editor", "viewer")
}

func mustBuild(t *testing.T, b *Builder) *Table {
	t.Helper()

	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return table
}

func enumFromValues(t *testing.T, values []string) *enum.Enumeration[string] {
	t.Helper()

	members := make([]enum.Member[string], len(values))
	for i, v := range values {
		members[i] = enum.M(strings.ToUpper(v), v)
	}
	e, err := enum.New("Generated", members, enum.WithFlavor(enum.SelfNaming), enum.UniqueValues())
	if err != nil {
		t.Fatalf("enum.New: %v", err)
	}
	return e
}
