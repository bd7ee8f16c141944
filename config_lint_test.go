package goRoles

import "testing"

func TestLint_DefaultConfigNoWarnings(t *testing.T) {
	cfg := defaultConfig()
	if ws := cfg.Lint(); len(ws) != 0 {
		t.Fatalf("expected no warnings, got %v", ws.Codes())
	}
}

func TestLint_Codes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{"root bit", func(c *Config) { c.Permission.RootBitReserved = true }, "root_bit_reserved"},
		{"wide mask", func(c *Config) { c.Permission.MaxBits = 256 }, "mask_wide"},
		{"deny-all optional", func(c *Config) { c.Roles.RequireDenyAll = false }, "deny_all_optional"},
		{"unbounded", func(c *Config) { c.Roles.MaxInheritanceDepth = 0 }, "inheritance_unbounded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			codes := cfg.Lint().Codes()
			if !containsCode(codes, tt.code) {
				t.Fatalf("expected %q in %v", tt.code, codes)
			}
			if len(codes) != 1 {
				t.Fatalf("expected exactly one warning, got %v", codes)
			}
		})
	}
}

func TestLint_MessagesNonEmpty(t *testing.T) {
	cfg := Config{
		Permission: PermissionConfig{MaxBits: 512, RootBitReserved: true},
	}
	ws := cfg.Lint()
	if len(ws) != 4 {
		t.Fatalf("expected 4 warnings, got %v", ws.Codes())
	}
	for _, w := range ws {
		if w.Message == "" {
			t.Errorf("warning %q has empty message", w.Code)
		}
	}
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
