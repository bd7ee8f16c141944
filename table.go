package goRoles

import (
	"fmt"
	"slices"

	"github.com/MrEthical07/goRoles/enum"
	"github.com/MrEthical07/goRoles/permission"
)

// Table is an immutable set of resolved roles and role groups.
//
// A Table is produced by [Builder.Build] and never changes afterwards; every
// accessor returns copies, so a Table may be shared freely between goroutines.
type Table struct {
	config      Config
	permissions *enum.Enumeration[string]
	registry    *permission.Registry
	roleManager *permission.RoleManager

	roles   map[string]*Role
	order   []string
	denyAll string

	groups     map[string][]*Role
	groupOrder []string
}

// Config returns the configuration the table was built with.
func (t *Table) Config() Config { return t.config }

// Permissions returns the permission enumeration the table was built from.
func (t *Table) Permissions() *enum.Enumeration[string] { return t.permissions }

// Registry returns the frozen permission registry. Bits are stable for the
// lifetime of the table.
func (t *Table) Registry() *permission.Registry { return t.registry }

// Role returns the named role.
func (t *Table) Role(name string) (*Role, error) {
	role, ok := t.roles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, name)
	}
	return role, nil
}

// MustRole is like Role but panics when name is undefined. Use it for names
// that are compile-time constants of the same catalog.
func (t *Table) MustRole(name string) *Role {
	role, err := t.Role(name)
	if err != nil {
		panic(err)
	}
	return role
}

// Roles returns every role in declaration order.
func (t *Table) Roles() []*Role {
	out := make([]*Role, len(t.order))
	for i, name := range t.order {
		out[i] = t.roles[name]
	}
	return out
}

// RoleNames returns every role name in declaration order.
func (t *Table) RoleNames() []string { return slices.Clone(t.order) }

// DenyAllRole returns the deny-all baseline role, or false if none was declared.
func (t *Table) DenyAllRole() (*Role, bool) {
	if t.denyAll == "" {
		return nil, false
	}
	return t.roles[t.denyAll], true
}

// Group returns the roles of the named group in presentation order.
func (t *Table) Group(name string) ([]*Role, error) {
	members, ok := t.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}
	return slices.Clone(members), nil
}

// GroupRoleNames returns the role names of the named group in presentation order.
func (t *Table) GroupRoleNames(name string) ([]string, error) {
	members, err := t.Group(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(members))
	for i, r := range members {
		names[i] = r.name
	}
	return names, nil
}

// GroupNames returns every group name in declaration order.
func (t *Table) GroupNames() []string { return slices.Clone(t.groupOrder) }

// InGroup reports whether role is a member of group.
func (t *Table) InGroup(group, role string) bool {
	for _, r := range t.groups[group] {
		if r.name == role {
			return true
		}
	}
	return false
}

// Allows reports whether role grants perm. Unknown roles and permissions are
// denied, as are permissions missing from the role's map.
func (t *Table) Allows(role, perm string) bool {
	r, ok := t.roles[role]
	if !ok {
		return false
	}
	return r.Allows(perm)
}

// Mask returns a copy of the compiled mask of the named role.
func (t *Table) Mask(role string) (permission.Mask, error) {
	mask, ok := t.roleManager.Mask(role)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, role)
	}
	return mask, nil
}

// HasPermission reports whether mask grants perm under this table's bit layout.
func (t *Table) HasPermission(mask permission.Mask, perm string) bool {
	if mask == nil || mask.Width() != t.registry.MaxBits() {
		return false
	}
	bit, ok := t.registry.Bit(perm)
	if !ok {
		return false
	}
	return mask.Has(bit, t.registry.RootReserved())
}

// PermissionsFromMask expands mask into permission names in registry order.
func (t *Table) PermissionsFromMask(mask permission.Mask) []string {
	if mask == nil || mask.Width() != t.registry.MaxBits() {
		return nil
	}
	return t.roleManager.Permissions(mask)
}

// Resolve returns the flattened permission map of every role, keyed by role name.
func (t *Table) Resolve() map[string]permission.Grants {
	out := make(map[string]permission.Grants, len(t.roles))
	for name, r := range t.roles {
		out[name] = r.PermissionMap()
	}
	return out
}
