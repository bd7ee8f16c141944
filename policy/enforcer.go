package policy

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	goRoles "github.com/MrEthical07/goRoles"
)

// ModelText is the casbin model the enforcer is built with. Requests are
// (subject, permission); subjects are role names or users attached to roles
// through the "g" section.
const ModelText = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act
`

// NewEnforcer returns a casbin enforcer loaded from table. Auto-save is off, so
// in-memory changes such as AddRoleForUser never reach the read-only adapter.
func NewEnforcer(table *goRoles.Table) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, fmt.Errorf("policy model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, NewAdapter(table))
	if err != nil {
		return nil, fmt.Errorf("policy enforcer: %w", err)
	}
	enforcer.EnableAutoSave(false)

	return enforcer, nil
}
