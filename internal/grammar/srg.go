package grammar

import (
	"maps"
	"slices"
	"strings"

	"symbol-mapper/internal/common"
	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
)

// SRG record tags.
const (
	tagClass  = "CL:"
	tagField  = "FD:"
	tagMethod = "MD:"
)

// SRG reads record-tagged SRG text:
//
//	CL: <obf> <srg>
//	FD: <obfOwner>/<obf> <srgOwner>/<srg>
//	MD: <obfOwner>/<obf> <obfDesc> <srgOwner>/<srg> <srgDesc>
//
// Records are not grouped by class in the source, so members are matched to
// classes by their obf owner.
type SRG struct {
	lines []line
	opts  Options
}

// NewSRG returns an SRG grammar over content.
func NewSRG(content string, opts Options) *SRG {
	return &SRG{lines: nonBlankLines(content), opts: opts}
}

// Format implements Grammar.
func (g *SRG) Format() model.Format { return model.FormatSRG }

// Namespaces implements Grammar.
func (g *SRG) Namespaces() Namespaces { return Namespaces{NamespaceObf, NamespaceSrg} }

type srgMember struct {
	obf     string
	srg     string
	obfDesc string
}

// Parse implements Grammar.
func (g *SRG) Parse(v MappingsVisitor) diagnostic.Diagnostics {
	diags := g.opts.collector()

	var classes [][]string

	fields := make(map[string][]srgMember)
	methods := make(map[string][]srgMember)

	for _, l := range g.lines {
		tokens := strings.Fields(l.text)

		switch tokens[0] {
		case tagClass:
			if len(tokens) != 3 {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
					"class record needs 2 names, got %d", len(tokens)-1)
				continue
			}

			classes = append(classes, tokens[1:])

		case tagField:
			if len(tokens) != 3 {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
					"field record needs 2 names, got %d", len(tokens)-1)
				continue
			}

			owner := common.OwnerName(tokens[1])
			fields[owner] = append(fields[owner], srgMember{
				obf: common.SimpleName(tokens[1]),
				srg: common.SimpleName(tokens[2]),
			})

		case tagMethod:
			if len(tokens) != 5 {
				diags.Warnf(diagnostic.CodeMalformedRecord, l.subject(),
					"method record needs 4 tokens, got %d", len(tokens)-1)
				continue
			}

			owner := common.OwnerName(tokens[1])
			methods[owner] = append(methods[owner], srgMember{
				obf:     common.SimpleName(tokens[1]),
				obfDesc: tokens[2],
				srg:     common.SimpleName(tokens[3]),
			})
		}
	}

	v.VisitStart(g.Namespaces())

	declared := make(map[string]bool, len(classes))

	for _, split := range classes {
		obf, srg := split[0], split[1]
		declared[obf] = true

		cv := v.VisitClass(MapEntry{NamespaceObf: obf, NamespaceSrg: srg})
		if cv == nil {
			continue
		}

		for _, f := range fields[obf] {
			cv.VisitField(MapEntry{NamespaceObf: f.obf, NamespaceSrg: f.srg}, "")
		}

		for _, m := range methods[obf] {
			cv.VisitMethod(MapEntry{NamespaceObf: m.obf, NamespaceSrg: m.srg}, m.obfDesc)
		}
	}

	v.VisitEnd()

	reportOrphans(diags, declared, fields, "field")
	reportOrphans(diags, declared, methods, "method")

	return diags.Diagnostics()
}

func reportOrphans(diags *diagnostic.Collector, declared map[string]bool, members map[string][]srgMember, kind string) {
	for _, owner := range slices.Sorted(maps.Keys(members)) {
		if !declared[owner] {
			diags.Infof(diagnostic.CodeMalformedRecord, owner,
				"%d %s record(s) reference an undeclared class", len(members[owner]), kind)
		}
	}
}
