package grammar

import (
	"strings"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
)

const (
	tinyMagic          = "tiny"
	tinyMajor          = "2"
	propertyEscapeName = "escaped-names"
)

// Tiny reads tiny v2 tables. Namespaces are taken from the header; member
// descriptors are expressed in the first namespace. Parameter, variable
// and comment rows are ignored.
type Tiny struct {
	lines      []line
	opts       Options
	namespaces Namespaces
	properties map[string]string
	headerErr  string
}

// NewTiny returns a tiny v2 grammar over content.
func NewTiny(content string, opts Options) *Tiny {
	g := &Tiny{
		lines:      nonBlankLines(content),
		opts:       opts,
		properties: make(map[string]string),
	}

	if len(g.lines) == 0 {
		g.headerErr = "missing tiny header"
		return g
	}

	header := strings.Split(g.lines[0].text, "\t")
	if len(header) < 4 || header[0] != tinyMagic || header[1] != tinyMajor {
		g.headerErr = "not a tiny v2 header"
		return g
	}

	g.namespaces = Namespaces(header[3:])
	g.lines = g.lines[1:]

	for len(g.lines) > 0 && depth(g.lines[0].text) == 1 {
		prop := strings.Split(g.lines[0].text[1:], "\t")
		if len(prop) > 1 {
			g.properties[prop[0]] = prop[1]
		} else {
			g.properties[prop[0]] = ""
		}

		g.lines = g.lines[1:]
	}

	return g
}

// Format implements Grammar.
func (g *Tiny) Format() model.Format { return model.FormatTiny }

// Namespaces implements Grammar.
func (g *Tiny) Namespaces() Namespaces { return g.namespaces }

// Properties returns the header properties.
func (g *Tiny) Properties() map[string]string { return g.properties }

// Parse implements Grammar.
func (g *Tiny) Parse(v MappingsVisitor) diagnostic.Diagnostics {
	diags := g.opts.collector()

	if g.headerErr != "" {
		diags.Errorf(diagnostic.CodeMalformedRecord, "line 1", "%s", g.headerErr)
		return diags.Diagnostics()
	}

	_, escaped := g.properties[propertyEscapeName]

	v.VisitStart(g.namespaces)

	var (
		cv      ClassVisitor
		inClass bool
	)

	for _, l := range g.lines {
		d := depth(l.text)
		parts := strings.Split(l.text[d:], "\t")

		switch {
		case d == 0 && parts[0] == "c":
			inClass = false
			cv = nil

			entry, ok := g.entry(parts[1:], escaped)
			if !ok {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
					"class row needs %d names, got %d", len(g.namespaces), len(parts)-1)
				continue
			}

			inClass = true
			cv = v.VisitClass(entry)

		case d == 1 && (parts[0] == "f" || parts[0] == "m"):
			if !inClass {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(), "member row outside of a class")
				continue
			}

			if len(parts) < 2 {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(), "member row without descriptor")
				continue
			}

			entry, ok := g.entry(parts[2:], escaped)
			if !ok {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
					"member row needs %d names, got %d", len(g.namespaces), len(parts)-2)
				continue
			}

			if cv == nil {
				continue
			}

			if parts[0] == "f" {
				cv.VisitField(entry, parts[1])
			} else {
				cv.VisitMethod(entry, parts[1])
			}

		case d >= 1:
			// comments, parameters and local variables
		default:
			diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(), "unknown row kind %q", parts[0])
		}
	}

	v.VisitEnd()

	return diags.Diagnostics()
}

func (g *Tiny) entry(names []string, escaped bool) (MapEntry, bool) {
	if len(names) != len(g.namespaces) {
		return nil, false
	}

	entry := make(MapEntry, len(names))
	for i, ns := range g.namespaces {
		name := names[i]
		if escaped {
			name = unescape(name)
		}

		entry[ns] = name
	}

	return entry, true
}

func depth(s string) int {
	return len(s) - len(strings.TrimLeft(s, "\t"))
}

var unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r", `\t`, "\t", `\0`, "\x00")

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	return unescaper.Replace(s)
}
