package permission

import (
	"fmt"
	"sync"
)

// Registry maps permission names to bit positions within a bitmask.
// Supports widths of 64, 128, 256, or 512 bits.
//
// A Registry is filled once at startup and then frozen; after [Registry.Freeze]
// it is read-only and safe for concurrent use.
type Registry struct {
	maxBits      int
	rootReserved bool
	rootBit      int

	mu        sync.RWMutex
	nameToBit map[string]int
	bitToName []string
	frozen    bool
}

// NewRegistry creates a permission [Registry]. maxBits selects the mask width
// (64/128/256/512); rootReserved reserves the highest bit as a grant-everything
// root permission that can never be assigned by [Registry.Register].
func NewRegistry(maxBits int, rootReserved bool) (*Registry, error) {
	if !ValidWidth(maxBits) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, maxBits)
	}

	r := &Registry{
		maxBits:      maxBits,
		rootReserved: rootReserved,
		rootBit:      -1,
		nameToBit:    make(map[string]int),
	}

	if rootReserved {
		r.rootBit = maxBits - 1
	}

	return r, nil
}

// ValidWidth reports whether bits is a supported mask width.
func ValidWidth(bits int) bool {
	switch bits {
	case 64, 128, 256, 512:
		return true
	default:
		return false
	}
}

// Register assigns the next available bit to the named permission.
// Returns the assigned bit index. Must be called before [Registry.Freeze].
func (r *Registry) Register(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return -1, ErrRegistryFrozen
	}

	if name == "" {
		return -1, ErrEmptyName
	}

	if _, exists := r.nameToBit[name]; exists {
		return -1, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	nextBit := len(r.bitToName)

	if r.rootReserved && nextBit >= r.rootBit {
		return -1, fmt.Errorf("%w: %s (root bit reserved)", ErrLimitExceeded, name)
	}

	if nextBit >= r.maxBits {
		return -1, fmt.Errorf("%w: %s", ErrLimitExceeded, name)
	}

	r.nameToBit[name] = nextBit
	r.bitToName = append(r.bitToName, name)

	return nextBit, nil
}

// RegisterAll registers names in order, stopping at the first failure.
func (r *Registry) RegisterAll(names []string) error {
	for _, name := range names {
		if _, err := r.Register(name); err != nil {
			return err
		}
	}
	return nil
}

// Bit returns the bit index for the named permission, or false if not registered.
func (r *Registry) Bit(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bit, ok := r.nameToBit[name]
	return bit, ok
}

// Name returns the permission name for the given bit index, or false if unassigned.
func (r *Registry) Name(bit int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if bit < 0 || bit >= len(r.bitToName) {
		return "", false
	}
	return r.bitToName[bit], true
}

// Names returns every registered permission in bit order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.bitToName))
	copy(out, r.bitToName)
	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Bit(name)
	return ok
}

// Freeze prevents further registrations. Must be called before the
// registry is used for validation.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether [Registry.Freeze] has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Count returns the number of registered permissions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bitToName)
}

// MaxBits returns the mask width the registry was created with.
func (r *Registry) MaxBits() int { return r.maxBits }

// RootReserved reports whether the highest bit is the reserved root bit.
func (r *Registry) RootReserved() bool { return r.rootReserved }

// RootBit returns the reserved root permission bit, or false if root-bit
// reservation is disabled.
func (r *Registry) RootBit() (int, bool) {
	if !r.rootReserved {
		return -1, false
	}
	return r.rootBit, true
}

// Capacity returns how many permissions can still be registered.
func (r *Registry) Capacity() int {
	limit := r.maxBits
	if r.rootReserved {
		limit--
	}
	return limit - r.Count()
}
