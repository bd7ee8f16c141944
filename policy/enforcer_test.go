package policy

import (
	"errors"
	"testing"

	"github.com/MrEthical07/goRoles/catalog"
)

func TestEnforcerMatchesTable(t *testing.T) {
	table := catalog.Default()

	enforcer, err := NewEnforcer(table)
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}

	for _, role := range table.RoleNames() {
		for _, perm := range catalog.Permissions.Values() {
			ok, err := enforcer.Enforce(role, perm)
			if err != nil {
				t.Fatalf("Enforce(%s, %s): %v", role, perm, err)
			}
			if ok != table.Allows(role, perm) {
				t.Fatalf("Enforce(%s, %s) = %v, table says %v", role, perm, ok, !ok)
			}
		}
	}
}

func TestEnforcerUsersInheritRoles(t *testing.T) {
	enforcer, err := NewEnforcer(catalog.Default())
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}

	if _, err := enforcer.AddRoleForUser("alice", catalog.OrgViewer); err != nil {
		t.Fatalf("AddRoleForUser: %v", err)
	}

	tests := []struct {
		perm string
		want bool
	}{
		{catalog.FlowsView, true},
		{catalog.FlowsEdit, false},
		{catalog.AdministrateUsers, false},
		{"rockets_launch", false},
	}
	for _, tt := range tests {
		ok, err := enforcer.Enforce("alice", tt.perm)
		if err != nil {
			t.Fatalf("Enforce: %v", err)
		}
		if ok != tt.want {
			t.Errorf("alice/%s = %v, want %v", tt.perm, ok, tt.want)
		}
	}

	ok, _ := enforcer.Enforce("bob", catalog.FlowsView)
	if ok {
		t.Fatal("unattached users are denied")
	}
}

func TestCustomRoleHasNoRules(t *testing.T) {
	for _, rule := range NewAdapter(catalog.Default()).Rules() {
		if rule[0] == catalog.Custom {
			t.Fatalf("custom must not produce rules, got %v", rule)
		}
	}
}

func TestAdapterIsReadOnly(t *testing.T) {
	a := NewAdapter(catalog.Default())

	if err := a.SavePolicy(nil); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("SavePolicy: %v", err)
	}
	if err := a.AddPolicy("p", "p", []string{"x", "y"}); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("AddPolicy: %v", err)
	}
	if err := a.RemovePolicy("p", "p", nil); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("RemovePolicy: %v", err)
	}
	if err := a.RemoveFilteredPolicy("p", "p", 0, "x"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("RemoveFilteredPolicy: %v", err)
	}

	enforcer, err := NewEnforcer(catalog.Default())
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	if err := enforcer.SavePolicy(); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("enforcer SavePolicy: %v", err)
	}
}
