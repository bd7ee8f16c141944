package goRoles

import "errors"

var (
	// ErrRoleNotFound is returned by table lookups of an undefined role.
	ErrRoleNotFound = errors.New("role not found")
	// ErrGroupNotFound is returned by table lookups of an undefined role group.
	ErrGroupNotFound = errors.New("role group not found")

	// ErrBuilderReused is returned when Build is called twice on one Builder.
	ErrBuilderReused = errors.New("builder already built")
	// ErrNoPermissions is returned when the permission enumeration is missing or empty.
	ErrNoPermissions = errors.New("permissions must be provided")
	// ErrEmptyRoleName is returned for a role declared without a name.
	ErrEmptyRoleName = errors.New("role name cannot be empty")
	// ErrDuplicateRole is returned when two roles share a name.
	ErrDuplicateRole = errors.New("role already defined")
	// ErrUnknownParent is returned when a role extends a role not declared before it.
	ErrUnknownParent = errors.New("parent role not defined")
	// ErrUnknownPermission is returned when a role grants or denies an unregistered permission.
	ErrUnknownPermission = errors.New("unknown permission")
	// ErrInheritanceTooDeep is returned when a parent chain exceeds Roles.MaxInheritanceDepth.
	ErrInheritanceTooDeep = errors.New("role inheritance too deep")
	// ErrDenyAllParents is returned when the deny-all role declares parents.
	ErrDenyAllParents = errors.New("deny-all role cannot extend other roles")
	// ErrMultipleDenyAll is returned when more than one deny-all role is declared.
	ErrMultipleDenyAll = errors.New("only one deny-all role may be declared")
	// ErrDenyAllRequired is returned when Roles.RequireDenyAll is set and no deny-all role exists.
	ErrDenyAllRequired = errors.New("deny-all role required")
	// ErrEmptyGroupName is returned for a role group declared without a name.
	ErrEmptyGroupName = errors.New("role group name cannot be empty")
	// ErrDuplicateGroup is returned when two role groups share a name.
	ErrDuplicateGroup = errors.New("role group already defined")
	// ErrEmptyGroup is returned for a role group with no roles.
	ErrEmptyGroup = errors.New("role group has no roles")
	// ErrDuplicateGroupMember is returned when a role appears twice in one group.
	ErrDuplicateGroupMember = errors.New("role listed twice in group")
)
