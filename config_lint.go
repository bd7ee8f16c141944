package goRoles

// LintWarning is a non-fatal configuration smell. Code is stable and meant for
// programmatic filtering; Message is for humans.
type LintWarning struct {
	Code    string
	Message string
}

// LintWarnings is the result of [Config.Lint].
type LintWarnings []LintWarning

// Codes returns the warning codes in report order.
func (ws LintWarnings) Codes() []string {
	codes := make([]string, len(ws))
	for i, w := range ws {
		codes[i] = w.Code
	}
	return codes
}

// Lint reports settings that are valid but likely unintended. Lint does not
// call Validate; run both.
func (c *Config) Lint() LintWarnings {
	var ws LintWarnings

	if c.Permission.RootBitReserved {
		ws = append(ws, LintWarning{
			Code:    "root_bit_reserved",
			Message: "a mask with the root bit set grants every permission, including ones added later",
		})
	}

	if c.Permission.MaxBits >= 256 {
		ws = append(ws, LintWarning{
			Code:    "mask_wide",
			Message: "masks of 256 bits or more add 32+ bytes to every encoded role grant",
		})
	}

	if !c.Roles.RequireDenyAll {
		ws = append(ws, LintWarning{
			Code:    "deny_all_optional",
			Message: "without a deny-all baseline, custom roles rely on missing keys meaning denied",
		})
	}

	if c.Roles.MaxInheritanceDepth == 0 {
		ws = append(ws, LintWarning{
			Code:    "inheritance_unbounded",
			Message: "role parent chains are not bounded",
		})
	}

	return ws
}
