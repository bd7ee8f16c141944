package goRoles

import (
	"slices"

	"github.com/MrEthical07/goRoles/permission"
)

// RoleSpec declares one role for a [Builder]. The resolved permission map is
// permission.Merge(parents..., Grants): parents in order, then Grants, later
// entries winning on collision.
type RoleSpec struct {
	Name        string
	Description string
	Parents     []string
	Grants      permission.Grants
}

// Role is a resolved, immutable role. It implements [permission.Source] so a
// role can be merged into other permission maps.
type Role struct {
	name        string
	description string
	parents     []string
	depth       int
	denyAll     bool

	grants  permission.Grants
	mask    permission.Mask
	granted []string
}

var _ permission.Source = (*Role)(nil)

func (r *Role) Name() string        { return r.name }
func (r *Role) Description() string { return r.description }

// Parents returns the names of the roles this role was merged from.
func (r *Role) Parents() []string { return slices.Clone(r.parents) }

// Depth is the length of the longest parent chain below this role. Roles with
// no parents have depth 0.
func (r *Role) Depth() int { return r.depth }

// IsDenyAll reports whether this is the table's deny-all baseline role.
func (r *Role) IsDenyAll() bool { return r.denyAll }

// PermissionMap returns a copy of the role's resolved permission map.
func (r *Role) PermissionMap() permission.Grants {
	if r == nil {
		return nil
	}
	return r.grants.Clone()
}

// Allows reports whether perm is granted. Absent keys are denied.
func (r *Role) Allows(perm string) bool {
	return r.grants.Allows(perm)
}

// Granted returns the granted permissions in registry order.
func (r *Role) Granted() []string { return slices.Clone(r.granted) }

// Denied returns the permissions this role explicitly maps to false, sorted.
func (r *Role) Denied() []string { return r.grants.Denied() }

// Mask returns a copy of the compiled permission mask.
func (r *Role) Mask() permission.Mask { return r.mask.Clone() }

// EncodedMask returns the compiled mask in the permission codec format.
func (r *Role) EncodedMask() ([]byte, error) {
	return permission.EncodeMask(r.mask)
}
