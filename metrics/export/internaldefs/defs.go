package internaldefs

import (
	goRoles "github.com/MrEthical07/goRoles"
)

// RoleLabel is the label/attribute key of per-role gauges.
const RoleLabel = "role"

// GaugeDef is a table-wide gauge.
type GaugeDef struct {
	Name  string
	Help  string
	Value func(goRoles.TableReport) int64
}

// RoleGaugeDef is a gauge reported once per role.
type RoleGaugeDef struct {
	Name  string
	Help  string
	Value func(goRoles.RoleReport) int64
}

var GaugeDefs = []GaugeDef{
	{
		Name:  "goroles_mask_bits",
		Help:  "Width of compiled permission masks.",
		Value: func(r goRoles.TableReport) int64 { return int64(r.MaskWidth) },
	},
	{
		Name:  "goroles_permissions",
		Help:  "Registered permissions.",
		Value: func(r goRoles.TableReport) int64 { return int64(r.PermissionCount) },
	},
	{
		Name:  "goroles_permission_capacity",
		Help:  "Mask bits still free for new permissions.",
		Value: func(r goRoles.TableReport) int64 { return int64(r.Capacity) },
	},
	{
		Name:  "goroles_roles",
		Help:  "Resolved roles.",
		Value: func(r goRoles.TableReport) int64 { return int64(r.RoleCount) },
	},
	{
		Name:  "goroles_groups",
		Help:  "Declared role groups.",
		Value: func(r goRoles.TableReport) int64 { return int64(r.GroupCount) },
	},
	{
		Name:  "goroles_max_inheritance_depth",
		Help:  "Longest parent chain in the table.",
		Value: func(r goRoles.TableReport) int64 { return int64(r.MaxDepth) },
	},
	{
		Name:  "goroles_ungranted_permissions",
		Help:  "Permissions no role grants.",
		Value: func(r goRoles.TableReport) int64 { return int64(len(r.UngrantedPermissions)) },
	},
}

var RoleGaugeDefs = []RoleGaugeDef{
	{
		Name:  "goroles_role_granted_permissions",
		Help:  "Permissions granted by a role.",
		Value: func(r goRoles.RoleReport) int64 { return int64(r.Granted) },
	},
	{
		Name:  "goroles_role_denied_permissions",
		Help:  "Permissions a role explicitly maps to false.",
		Value: func(r goRoles.RoleReport) int64 { return int64(r.Denied) },
	},
	{
		Name:  "goroles_role_inheritance_depth",
		Help:  "Length of the longest parent chain below a role.",
		Value: func(r goRoles.RoleReport) int64 { return int64(r.Depth) },
	},
}
