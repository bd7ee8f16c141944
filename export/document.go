package export

import (
	"encoding/hex"

	goRoles "github.com/MrEthical07/goRoles"
)

type Document struct {
	MaskBits        int          `yaml:"mask_bits" json:"mask_bits"`
	RootBitReserved bool         `yaml:"root_bit_reserved" json:"root_bit_reserved"`
	Permissions     []Permission `yaml:"permissions" json:"permissions"`
	Roles           []Role       `yaml:"roles" json:"roles"`
	Groups          []Group      `yaml:"groups" json:"groups"`
}

type Permission struct {
	Symbol string `yaml:"symbol" json:"symbol"`
	Value  string `yaml:"value" json:"value"`
	Bit    int    `yaml:"bit" json:"bit"`
}

type Role struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Parents     []string `yaml:"parents,omitempty" json:"parents,omitempty"`
	DenyAll     bool     `yaml:"deny_all,omitempty" json:"deny_all,omitempty"`
	Granted     []string `yaml:"granted" json:"granted"`
	Denied      []string `yaml:"denied,omitempty" json:"denied,omitempty"`
	// Mask is the hex form of the encoded permission mask.
	Mask string `yaml:"mask" json:"mask"`
}

type Group struct {
	Name  string   `yaml:"name" json:"name"`
	Roles []string `yaml:"roles" json:"roles"`
}

// NewDocument flattens table into a Document.
func NewDocument(table *goRoles.Table) (Document, error) {
	registry := table.Registry()
	doc := Document{
		MaskBits:        registry.MaxBits(),
		RootBitReserved: registry.RootReserved(),
	}

	for _, c := range table.Permissions().Choices() {
		bit, _ := registry.Bit(c.Value)
		doc.Permissions = append(doc.Permissions, Permission{
			Symbol: c.Name,
			Value:  c.Value,
			Bit:    bit,
		})
	}

	for _, r := range table.Roles() {
		role, err := newRole(r)
		if err != nil {
			return Document{}, err
		}
		doc.Roles = append(doc.Roles, role)
	}

	for _, name := range table.GroupNames() {
		roles, err := table.GroupRoleNames(name)
		if err != nil {
			return Document{}, err
		}
		doc.Groups = append(doc.Groups, Group{Name: name, Roles: roles})
	}

	return doc, nil
}

// NewRoleDocument renders a single role.
func NewRoleDocument(r *goRoles.Role) (Role, error) {
	return newRole(r)
}

func newRole(r *goRoles.Role) (Role, error) {
	mask, err := r.EncodedMask()
	if err != nil {
		return Role{}, err
	}

	granted := r.Granted()
	if granted == nil {
		granted = []string{}
	}

	out := Role{
		Name:        r.Name(),
		Description: r.Description(),
		Parents:     r.Parents(),
		DenyAll:     r.IsDenyAll(),
		Granted:     granted,
		Mask:        hex.EncodeToString(mask),
	}
	// The deny-all role denies everything; listing it adds nothing.
	if !r.IsDenyAll() {
		out.Denied = r.Denied()
	}
	return out, nil
}
