package grammar

import (
	"symbol-mapper/internal/common"
	"symbol-mapper/internal/descriptor"
	"symbol-mapper/internal/diagnostic"
)

// Stats is a validation-only MappingsVisitor. It counts records and checks
// names and descriptors without building a model.
type Stats struct {
	Namespaces Namespaces
	Classes    int
	Fields     int
	Methods    int

	// Missing counts entries lacking a name, per namespace.
	Missing map[string]int

	diags *diagnostic.Collector
}

// NewStats returns a Stats visitor reporting into diags.
func NewStats(diags *diagnostic.Collector) *Stats {
	return &Stats{Missing: make(map[string]int), diags: diags}
}

// VisitStart implements MappingsVisitor.
func (s *Stats) VisitStart(namespaces Namespaces) {
	s.Namespaces = namespaces
}

// VisitClass implements MappingsVisitor.
func (s *Stats) VisitClass(entry Entry) ClassVisitor {
	s.Classes++
	s.check(entry, true)

	return statsClass{s}
}

// VisitEnd implements MappingsVisitor.
func (s *Stats) VisitEnd() {}

func (s *Stats) check(entry Entry, qualified bool) {
	for _, ns := range s.Namespaces {
		name, ok := entry.Get(ns)
		if !ok {
			s.Missing[ns]++
			continue
		}

		simple := name
		if qualified {
			simple = common.SimpleName(name)
		}

		if !IsValidJavaIdentifier(simple) && simple != "<init>" && simple != "<clinit>" {
			s.diags.Infof(diagnostic.CodeInvalidIdentifier, name, "not a valid identifier in %s", ns)
		}
	}
}

type statsClass struct{ s *Stats }

func (c statsClass) VisitField(entry Entry, desc string) {
	c.s.Fields++
	c.s.check(entry, false)

	switch {
	case desc == "":
	case descriptor.IsMethod(desc):
		c.s.diags.Warnf(diagnostic.CodeInvalidDescriptor, desc, "field has a method descriptor")
	default:
		if err := descriptor.Validate(desc); err != nil {
			c.s.diags.Warnf(diagnostic.CodeInvalidDescriptor, desc, "%v", err)
		}
	}
}

func (c statsClass) VisitMethod(entry Entry, desc string) {
	c.s.Methods++
	c.s.check(entry, false)

	if err := descriptor.Validate(desc); err != nil {
		c.s.diags.Warnf(diagnostic.CodeInvalidDescriptor, desc, "%v", err)
	} else if !descriptor.IsMethod(desc) {
		c.s.diags.Warnf(diagnostic.CodeInvalidDescriptor, desc, "method has a field descriptor")
	}
}
