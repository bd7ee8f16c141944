package permission

import (
	"fmt"
	"slices"
	"sync"
)

// RoleManager compiles role grant maps into bitmasks against a frozen [Registry].
//
// RoleManager instances are filled during initialization and then frozen; after
// that they are read-only.
type RoleManager struct {
	registry *Registry

	mu     sync.RWMutex
	roles  map[string]Mask
	order  []string
	frozen bool
}

// NewRoleManager returns an empty manager bound to registry.
func NewRoleManager(registry *Registry) *RoleManager {
	return &RoleManager{
		registry: registry,
		roles:    make(map[string]Mask),
	}
}

// RegisterRole compiles grants into a mask and stores it under roleName.
//
// Every key of grants must be registered; keys mapped to false are validated
// but leave their bit clear.
func (rm *RoleManager) RegisterRole(roleName string, grants Grants) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if rm.frozen {
		return ErrRoleFrozen
	}

	if roleName == "" {
		return ErrEmptyRoleName
	}

	if _, exists := rm.roles[roleName]; exists {
		return fmt.Errorf("%w: %s", ErrRoleRegistered, roleName)
	}

	mask, err := rm.Compile(grants)
	if err != nil {
		return fmt.Errorf("role %s: %w", roleName, err)
	}

	rm.roles[roleName] = mask
	rm.order = append(rm.order, roleName)
	return nil
}

// Compile converts grants into a mask without registering anything.
func (rm *RoleManager) Compile(grants Grants) (Mask, error) {
	mask, err := NewMask(rm.registry.MaxBits())
	if err != nil {
		return nil, err
	}

	// Sorted so the first reported unknown key is deterministic.
	names := make([]string, 0, len(grants))
	for name := range grants {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		bit, ok := rm.registry.Bit(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
		}
		if grants[name] {
			mask.Set(bit)
		}
	}

	return mask, nil
}

// Mask returns a copy of the compiled mask for roleName.
func (rm *RoleManager) Mask(roleName string) (Mask, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	mask, ok := rm.roles[roleName]
	if !ok {
		return nil, false
	}
	return mask.Clone(), true
}

// Roles returns registered role names in registration order.
func (rm *RoleManager) Roles() []string {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return slices.Clone(rm.order)
}

// Freeze prevents further registrations.
func (rm *RoleManager) Freeze() {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.frozen = true
}

// Count returns the number of registered roles.
func (rm *RoleManager) Count() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.roles)
}

// Permissions expands mask back into permission names in bit order.
func (rm *RoleManager) Permissions(mask Mask) []string {
	if mask == nil {
		return nil
	}

	var perms []string
	for bit, name := range rm.registry.Names() {
		if mask.Has(bit, rm.registry.RootReserved()) {
			perms = append(perms, name)
		}
	}
	return perms
}
