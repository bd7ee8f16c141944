package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	goRoles "github.com/MrEthical07/goRoles"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts text, yaml, yml and json, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// YAML renders table as a YAML document.
func YAML(t *goRoles.Table) ([]byte, error) {
	doc, err := NewDocument(t)
	if err != nil {
		return nil, err
	}
	return encodeYAML(doc)
}

// JSON renders table as indented JSON.
func JSON(t *goRoles.Table) ([]byte, error) {
	doc, err := NewDocument(t)
	if err != nil {
		return nil, err
	}
	return encodeJSON(doc)
}

// Write renders table to w in the given format.
func Write(w io.Writer, t *goRoles.Table, f Format) error {
	doc, err := NewDocument(t)
	if err != nil {
		return err
	}
	return write(w, doc, f, renderTable)
}

// WriteRoles renders the given roles only, for example the members of a group.
func WriteRoles(w io.Writer, roles []*goRoles.Role, f Format) error {
	docs := make([]Role, 0, len(roles))
	for _, r := range roles {
		d, err := newRole(r)
		if err != nil {
			return err
		}
		docs = append(docs, d)
	}
	return write(w, docs, f, renderRoles)
}

func write[T any](w io.Writer, v T, f Format, text func(T) string) error {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatYAML:
		out, err = encodeYAML(v)
	case FormatJSON:
		out, err = encodeJSON(v)
	case FormatText:
		out = []byte(text(v) + "\n")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

func renderTable(doc Document) string {
	var b strings.Builder

	perms := newWriter(fmt.Sprintf("Permissions (%d-bit mask)", doc.MaskBits))
	perms.AppendHeader(table.Row{"bit", "symbol", "value"})
	for _, p := range doc.Permissions {
		perms.AppendRow(table.Row{p.Bit, p.Symbol, p.Value})
	}
	b.WriteString(perms.Render())
	b.WriteString("\n\n")

	b.WriteString(renderRoles(doc.Roles))

	if len(doc.Groups) > 0 {
		groups := newWriter("Groups")
		groups.AppendHeader(table.Row{"group", "roles"})
		for _, g := range doc.Groups {
			groups.AppendRow(table.Row{g.Name, strings.Join(g.Roles, ", ")})
		}
		b.WriteString("\n\n")
		b.WriteString(groups.Render())
	}

	return b.String()
}

func renderRoles(roles []Role) string {
	tw := newWriter("Roles")
	tw.AppendHeader(table.Row{"role", "parents", "granted", "denied", "mask"})
	for _, r := range roles {
		denied := strings.Join(r.Denied, ", ")
		if r.DenyAll {
			denied = "(all)"
		}
		tw.AppendRow(table.Row{
			r.Name,
			strings.Join(r.Parents, ", "),
			len(r.Granted),
			denied,
			r.Mask,
		})
	}
	return tw.Render()
}

func newWriter(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateColumns = false
	return tw
}
