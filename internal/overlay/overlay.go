// Package overlay applies name tables on top of a populated container.
//
// Overlays run after the base grammar, in order, each with read-modify-write
// access to the container. They never declare classes or members; records
// that match nothing are counted and reported.
package overlay

import (
	"bufio"
	"fmt"
	"strings"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/utils"
)

// Kind selects an overlay table layout.
type Kind string

const (
	KindFields  Kind = "fields"
	KindMethods Kind = "methods"
	KindParams  Kind = "params"
)

// Pass is one overlay step.
type Pass interface {
	Kind() Kind
	Apply(c *model.Container, diags *diagnostic.Collector)
}

// New parses content as a table of the given kind.
func New(kind Kind, content string, diags *diagnostic.Collector) (Pass, error) {
	switch kind {
	case KindFields:
		return &FieldNames{Table: ParseNameTable(content, diags)}, nil
	case KindMethods:
		return &MethodNames{Table: ParseNameTable(content, diags)}, nil
	case KindParams:
		return &Params{Table: ParseParamTable(content, diags)}, nil
	default:
		return nil, fmt.Errorf("unknown overlay kind %q", kind)
	}
}

// NameTable maps an intermediary member name to a display name.
type NameTable map[string]string

// ParseNameTable reads comma-separated rows whose first two columns are the
// intermediary name and the display name. Rows with fewer than two columns
// are reported and skipped. A header row is kept; it matches no member.
func ParseNameTable(content string, diags *diagnostic.Collector) NameTable {
	table := make(NameTable)

	forEachRow(content, func(no int, row string) {
		key, name := utils.Unpack2(strings.Split(row, ","))
		if key == "" || name == "" {
			diags.Warnf(diagnostic.CodeMalformedRecord, fmt.Sprintf("line %d", no), "name table row needs 2 columns")
			return
		}

		table[key] = name
	})

	return table
}

// forEachRow calls fn with every non-blank line and its 1-based number.
func forEachRow(content string, fn func(no int, row string)) {
	sc := bufio.NewScanner(strings.NewReader(content))
	no := 0

	for sc.Scan() {
		no++

		row := strings.TrimSpace(sc.Text())
		if row == "" {
			continue
		}

		fn(no, row)
	}
}

// FieldNames sets mapped names of fields by intermediary name.
type FieldNames struct {
	Table NameTable
}

// Kind implements Pass.
func (o *FieldNames) Kind() Kind { return KindFields }

// Apply implements Pass.
func (o *FieldNames) Apply(c *model.Container, diags *diagnostic.Collector) {
	used := make(map[string]bool)

	for _, cls := range c.Classes() {
		for _, f := range cls.Fields {
			if name, ok := o.Table[f.Intermediary]; ok {
				f.Mapped = name
				used[f.Intermediary] = true
			}
		}
	}

	reportUnused(diags, KindFields, len(o.Table), len(used))
}

// MethodNames sets mapped names of methods by intermediary name.
type MethodNames struct {
	Table NameTable
}

// Kind implements Pass.
func (o *MethodNames) Kind() Kind { return KindMethods }

// Apply implements Pass.
func (o *MethodNames) Apply(c *model.Container, diags *diagnostic.Collector) {
	used := make(map[string]bool)

	for _, cls := range c.Classes() {
		for _, m := range cls.Methods {
			if name, ok := o.Table[m.Intermediary]; ok {
				m.Mapped = name
				used[m.Intermediary] = true
			}
		}
	}

	reportUnused(diags, KindMethods, len(o.Table), len(used))
}

func reportUnused(diags *diagnostic.Collector, kind Kind, total, used int) {
	if total > used {
		diags.Infof(diagnostic.CodeUnmatchedOverlayRecord, string(kind),
			"%d of %d %s rows matched no member", total-used, total, kind)
	}
}
