package goRoles

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrEthical07/goRoles/permission"
)

// Config controls how a [Builder] compiles role tables.
//
// Config values are set during initialization and then treated as immutable.
type Config struct {
	Permission PermissionConfig `yaml:"permission"`
	Roles      RoleConfig       `yaml:"roles"`
}

/*
====================================
PERMISSION CONFIG
====================================
*/

// PermissionConfig selects the mask layout role tables compile to.
type PermissionConfig struct {
	MaxBits         int  `yaml:"max_bits"`          // 64, 128, 256, 512 (hard cap)
	RootBitReserved bool `yaml:"root_bit_reserved"` // if true, highest bit is root/super admin
}

/*
====================================
ROLE CONFIG
====================================
*/

// RoleConfig holds role composition rules enforced at build time.
type RoleConfig struct {
	// RequireDenyAll makes Build fail unless a deny-all baseline role is declared.
	RequireDenyAll bool `yaml:"require_deny_all"`
	// MaxInheritanceDepth bounds the length of parent chains. Zero means unbounded.
	MaxInheritanceDepth int `yaml:"max_inheritance_depth"`
}

// DefaultConfig returns the configuration used when [Builder.WithConfig] is not called.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Permission: PermissionConfig{
			MaxBits:         64,
			RootBitReserved: false,
		},
		Roles: RoleConfig{
			RequireDenyAll:      true,
			MaxInheritanceDepth: 8,
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !permission.ValidWidth(c.Permission.MaxBits) {
		return errors.New("Permission MaxBits must be one of 64, 128, 256, 512")
	}

	if c.Roles.MaxInheritanceDepth < 0 {
		return errors.New("Roles MaxInheritanceDepth must be >= 0")
	}

	return nil
}

// ParseConfig decodes YAML on top of [DefaultConfig] and validates the result.
// Keys missing from data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
