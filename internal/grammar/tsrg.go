package grammar

import (
	"strings"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/utils"
)

// TSRG reads tab-indented TSRG v1 text:
//
//	<obf> <srg>
//		<obf> <srg>            field
//		<obf> <obfDesc> <srg>  method
//
// Package lines (names ending in '/') are ignored.
type TSRG struct {
	lines []line
	opts  Options
}

// NewTSRG returns a TSRG grammar over content.
func NewTSRG(content string, opts Options) *TSRG {
	return &TSRG{lines: nonBlankLines(content), opts: opts}
}

// Format implements Grammar.
func (g *TSRG) Format() model.Format { return model.FormatTSRG }

// Namespaces implements Grammar.
func (g *TSRG) Namespaces() Namespaces { return Namespaces{NamespaceObf, NamespaceSrg} }

// Parse implements Grammar.
func (g *TSRG) Parse(v MappingsVisitor) diagnostic.Diagnostics {
	diags := g.opts.collector()

	v.VisitStart(g.Namespaces())

	var (
		cv      ClassVisitor
		inClass bool
	)

	for _, l := range g.lines {
		member := strings.HasPrefix(l.text, "\t") || strings.HasPrefix(l.text, " ")
		tokens := strings.Fields(l.text)

		if !member {
			inClass = false
			cv = nil

			if len(tokens) != 2 {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
					"class line needs 2 names, got %d", len(tokens))
				continue
			}

			if strings.HasSuffix(tokens[0], "/") {
				continue
			}

			inClass = true
			cv = v.VisitClass(MapEntry{NamespaceObf: tokens[0], NamespaceSrg: tokens[1]})

			continue
		}

		if !inClass {
			diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(), "member line outside of a class")
			continue
		}

		if cv == nil {
			continue
		}

		switch len(tokens) {
		case 2:
			cv.VisitField(MapEntry{NamespaceObf: tokens[0], NamespaceSrg: tokens[1]}, "")
		case 3:
			obf, desc, srg := utils.Unpack3(tokens)
			cv.VisitMethod(MapEntry{NamespaceObf: obf, NamespaceSrg: srg}, desc)
		default:
			diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
				"member line needs 2 or 3 tokens, got %d", len(tokens))
		}
	}

	v.VisitEnd()

	return diags.Diagnostics()
}
