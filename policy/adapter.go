package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"

	goRoles "github.com/MrEthical07/goRoles"
)

// ErrReadOnly is returned by every adapter write. Role tables are compiled from
// code and cannot be changed through the enforcer.
var ErrReadOnly = errors.New("policy: role table adapter is read-only")

// Adapter implements persist.Adapter over a [goRoles.Table].
type Adapter struct {
	table *goRoles.Table
}

var _ persist.Adapter = (*Adapter)(nil)

// NewAdapter returns an adapter serving table's granted permissions.
func NewAdapter(table *goRoles.Table) *Adapter {
	return &Adapter{table: table}
}

// Rules returns one {role, permission} pair per granted permission, roles in
// declaration order and permissions in registry order.
func (a *Adapter) Rules() [][]string {
	var rules [][]string
	for _, role := range a.table.Roles() {
		for _, perm := range role.Granted() {
			rules = append(rules, []string{role.Name(), perm})
		}
	}
	return rules
}

// LoadPolicy loads all policy rules from the table.
func (a *Adapter) LoadPolicy(m model.Model) error {
	for _, rule := range a.Rules() {
		line := append([]string{"p"}, rule...)
		if err := persist.LoadPolicyArray(line, m); err != nil {
			return err
		}
	}
	return nil
}

// SavePolicy always fails with ErrReadOnly.
func (a *Adapter) SavePolicy(_ model.Model) error { return ErrReadOnly }

// AddPolicy always fails with ErrReadOnly.
func (a *Adapter) AddPolicy(_ string, _ string, rule []string) error {
	return readOnly(rule)
}

// RemovePolicy always fails with ErrReadOnly.
func (a *Adapter) RemovePolicy(_ string, _ string, rule []string) error {
	return readOnly(rule)
}

// RemoveFilteredPolicy always fails with ErrReadOnly.
func (a *Adapter) RemoveFilteredPolicy(_ string, _ string, _ int, fieldValues ...string) error {
	return readOnly(fieldValues)
}

func readOnly(rule []string) error {
	if len(rule) == 0 {
		return ErrReadOnly
	}
	return fmt.Errorf("%w: %s", ErrReadOnly, strings.Join(rule, ", "))
}
