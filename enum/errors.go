package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchMember is matched by every [*LookupError].
	ErrNoSuchMember = errors.New("no enumerated value")
	// ErrEmptyType is returned by [New] when the enumeration type name is blank.
	ErrEmptyType = errors.New("enumeration type name cannot be empty")
	// ErrInvalidName is returned by [New] for names that are not upper case or start with an underscore.
	ErrInvalidName = errors.New("invalid enumeration member name")
	// ErrDuplicateName is returned by [New] when a name is declared twice.
	ErrDuplicateName = errors.New("duplicate enumeration member name")
	// ErrDuplicateValue is returned by [New] when [UniqueValues] is set and two members share a value.
	ErrDuplicateValue = errors.New("duplicate enumeration member value")
)

// LookupError reports a lookup of a name (or value) that the enumeration does not define.
// ByValue is set when the failed lookup was a reverse lookup, in which case Name
// holds the formatted value.
type LookupError struct {
	Type    string
	Name    string
	ByValue bool
}

func (e *LookupError) Error() string {
	if e.ByValue {
		return fmt.Sprintf("%s has no enumerated member with value %s", e.Type, e.Name)
	}
	return fmt.Sprintf("%s has no enumerated value named %s", e.Type, e.Name)
}

// Is makes errors.Is(err, ErrNoSuchMember) true for any lookup failure.
func (e *LookupError) Is(target error) bool {
	return target == ErrNoSuchMember
}
