package goRoles

// TableReport summarizes a built table for audits and startup logs.
type TableReport struct {
	MaskWidth       int
	RootBitReserved bool
	PermissionCount int
	Capacity        int // bits still free after registration
	RoleCount       int
	GroupCount      int
	DenyAllRole     string
	MaxDepth        int

	// UngrantedPermissions lists permissions that no role grants, in registry order.
	UngrantedPermissions []string
	Roles                []RoleReport
}

type RoleReport struct {
	Name    string
	Parents []string
	Granted int
	Denied  int
	Depth   int
}

func (t *Table) Report() TableReport {
	if t == nil {
		return TableReport{}
	}

	report := TableReport{
		MaskWidth:       t.registry.MaxBits(),
		RootBitReserved: t.registry.RootReserved(),
		PermissionCount: t.registry.Count(),
		Capacity:        t.registry.Capacity(),
		RoleCount:       len(t.order),
		GroupCount:      len(t.groupOrder),
		DenyAllRole:     t.denyAll,
	}

	granted := make(map[string]bool, t.registry.Count())
	for _, r := range t.Roles() {
		for _, p := range r.granted {
			granted[p] = true
		}
		if r.depth > report.MaxDepth {
			report.MaxDepth = r.depth
		}
		report.Roles = append(report.Roles, RoleReport{
			Name:    r.name,
			Parents: r.Parents(),
			Granted: len(r.granted),
			Denied:  len(r.grants.Denied()),
			Depth:   r.depth,
		})
	}

	for _, p := range t.registry.Names() {
		if !granted[p] {
			report.UngrantedPermissions = append(report.UngrantedPermissions, p)
		}
	}

	return report
}
