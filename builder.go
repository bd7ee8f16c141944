package goRoles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cdr.dev/slog/v3"

	"github.com/MrEthical07/goRoles/enum"
	"github.com/MrEthical07/goRoles/permission"
)

// Builder collects permissions, roles and role groups and compiles them into a
// [Table]. A Builder is single-use and not safe for concurrent use.
type Builder struct {
	config Config
	logger slog.Logger

	permissions *enum.Enumeration[string]
	roles       []roleEntry
	groups      []groupEntry

	built bool
}

type roleEntry struct {
	spec    RoleSpec
	denyAll bool
}

type groupEntry struct {
	name  string
	roles []string
}

// New returns a Builder using [DefaultConfig] and a logger with no sinks.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithLogger sets the logger used while building.
func (b *Builder) WithLogger(logger slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithPermissions sets the closed permission set. Bits are assigned in the
// enumeration's declaration order; values are the permission identifiers.
func (b *Builder) WithPermissions(perms *enum.Enumeration[string]) *Builder {
	b.permissions = perms
	return b
}

// WithRole appends a role. Parents must be declared by an earlier call.
func (b *Builder) WithRole(spec RoleSpec) *Builder {
	b.roles = append(b.roles, roleEntry{spec: spec})
	return b
}

// WithDenyAllRole appends the baseline role that maps every permission to false.
func (b *Builder) WithDenyAllRole(name, description string) *Builder {
	b.roles = append(b.roles, roleEntry{
		spec:    RoleSpec{Name: name, Description: description},
		denyAll: true,
	})
	return b
}

// WithGroup appends an ordered role group. Order is kept as given.
func (b *Builder) WithGroup(name string, roles ...string) *Builder {
	b.groups = append(b.groups, groupEntry{name: name, roles: roles})
	return b
}

// Build validates every declaration and resolves the role table. Any
// misconfiguration fails the whole build; there are no partial tables.
func (b *Builder) Build() (*Table, error) {
	if b.built {
		return nil, ErrBuilderReused
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.permissions == nil || b.permissions.Len() == 0 {
		return nil, ErrNoPermissions
	}

	ctx := context.Background()
	logger := b.logger.Named("goroles")

	// -------- PERMISSION REGISTRY --------
	registry, err := permission.NewRegistry(
		cfg.Permission.MaxBits,
		cfg.Permission.RootBitReserved,
	)
	if err != nil {
		return nil, err
	}

	if err := registry.RegisterAll(b.permissions.Values()); err != nil {
		return nil, fmt.Errorf("register %s: %w", b.permissions.Type(), err)
	}

	registry.Freeze()

	// -------- ROLES --------
	roleManager := permission.NewRoleManager(registry)

	t := &Table{
		config:      cfg,
		permissions: b.permissions,
		registry:    registry,
		roleManager: roleManager,
		roles:       make(map[string]*Role, len(b.roles)),
		groups:      make(map[string][]*Role, len(b.groups)),
	}

	for _, entry := range b.roles {
		role, err := b.resolveRole(t, entry)
		if err != nil {
			return nil, err
		}

		t.roles[role.name] = role
		t.order = append(t.order, role.name)
		if role.denyAll {
			t.denyAll = role.name
		}

		logger.Debug(ctx, "role resolved",
			slog.F("role", role.name),
			slog.F("parents", role.parents),
			slog.F("granted", len(role.granted)),
			slog.F("depth", role.depth),
		)
	}

	roleManager.Freeze()

	if cfg.Roles.RequireDenyAll && t.denyAll == "" {
		return nil, ErrDenyAllRequired
	}

	// -------- GROUPS --------
	for _, g := range b.groups {
		members, err := resolveGroup(t, g)
		if err != nil {
			return nil, err
		}
		t.groups[g.name] = members
		t.groupOrder = append(t.groupOrder, g.name)
	}

	b.built = true

	logger.Info(ctx, "role table built",
		slog.F("permissions", registry.Count()),
		slog.F("roles", len(t.order)),
		slog.F("groups", len(t.groupOrder)),
		slog.F("mask_bits", registry.MaxBits()),
	)

	return t, nil
}

func (b *Builder) resolveRole(t *Table, entry roleEntry) (*Role, error) {
	spec := entry.spec
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrEmptyRoleName
	}
	if _, exists := t.roles[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRole, name)
	}

	var (
		grants permission.Grants
		depth  int
	)

	if entry.denyAll {
		if len(spec.Parents) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrDenyAllParents, name)
		}
		if t.denyAll != "" {
			return nil, fmt.Errorf("%w: %s and %s", ErrMultipleDenyAll, t.denyAll, name)
		}
		grants = permission.Merge(permission.DenyAll(t.registry.Names()), spec.Grants)
	} else {
		sources := make([]permission.Source, 0, len(spec.Parents)+1)
		for _, parentName := range spec.Parents {
			parent, ok := t.roles[parentName]
			if !ok {
				return nil, fmt.Errorf("%w: %s extends %s", ErrUnknownParent, name, parentName)
			}
			if parent.depth+1 > depth {
				depth = parent.depth + 1
			}
			sources = append(sources, parent)
		}
		sources = append(sources, spec.Grants)
		grants = permission.Merge(sources...)
	}

	if limit := b.config.Roles.MaxInheritanceDepth; limit > 0 && depth > limit {
		return nil, fmt.Errorf("%w: %s has depth %d, limit %d", ErrInheritanceTooDeep, name, depth, limit)
	}

	if err := t.roleManager.RegisterRole(name, grants); err != nil {
		if errors.Is(err, permission.ErrNotRegistered) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownPermission, err)
		}
		return nil, err
	}

	mask, _ := t.roleManager.Mask(name)

	return &Role{
		name:        name,
		description: spec.Description,
		parents:     append([]string(nil), spec.Parents...),
		depth:       depth,
		denyAll:     entry.denyAll,
		grants:      grants,
		mask:        mask,
		granted:     t.roleManager.Permissions(mask),
	}, nil
}

func resolveGroup(t *Table, g groupEntry) ([]*Role, error) {
	if strings.TrimSpace(g.name) == "" {
		return nil, ErrEmptyGroupName
	}
	if _, exists := t.groups[g.name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateGroup, g.name)
	}
	if len(g.roles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyGroup, g.name)
	}

	seen := make(map[string]struct{}, len(g.roles))
	members := make([]*Role, 0, len(g.roles))
	for _, roleName := range g.roles {
		role, ok := t.roles[roleName]
		if !ok {
			return nil, fmt.Errorf("group %s: %w: %s", g.name, ErrRoleNotFound, roleName)
		}
		if _, dup := seen[roleName]; dup {
			return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateGroupMember, roleName, g.name)
		}
		seen[roleName] = struct{}{}
		members = append(members, role)
	}
	return members, nil
}
