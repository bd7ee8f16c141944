package permission

import "errors"

var (
	ErrInvalidWidth    = errors.New("invalid mask width")
	ErrRegistryFrozen  = errors.New("registry frozen")
	ErrEmptyName       = errors.New("permission name cannot be empty")
	ErrDuplicateName   = errors.New("permission already registered")
	ErrLimitExceeded   = errors.New("permission limit exceeded")
	ErrNotRegistered   = errors.New("permission not registered")
	ErrRoleFrozen      = errors.New("role manager frozen")
	ErrEmptyRoleName   = errors.New("role name empty")
	ErrRoleRegistered  = errors.New("role already registered")
	ErrInvalidMaskType = errors.New("invalid mask type")
	ErrInvalidMaskSize = errors.New("invalid mask size")
)
