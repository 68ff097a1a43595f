package grammar

import "slices"

// Namespaces is the ordered list of namespace identifiers a grammar declares.
type Namespaces []string

// Contains reports whether ns is declared.
func (n Namespaces) Contains(ns string) bool {
	return slices.Contains(n, ns)
}

// Index returns the column of ns, or -1.
func (n Namespaces) Index(ns string) int {
	return slices.Index(n, ns)
}

// Entry looks up an entity's name per namespace.
type Entry interface {
	// Get returns the name in namespace, and false when the entity has no
	// name declared there.
	Get(namespace string) (string, bool)
}

// MapEntry is an Entry backed by a map. Empty names count as undeclared.
type MapEntry map[string]string

// Get implements Entry.
func (e MapEntry) Get(namespace string) (string, bool) {
	v, ok := e[namespace]
	return v, ok && v != ""
}

// MappingsVisitor receives the records of one grammar run.
type MappingsVisitor interface {
	VisitStart(namespaces Namespaces)
	// VisitClass returns the visitor for the class members, or nil to skip
	// them.
	VisitClass(entry Entry) ClassVisitor
	VisitEnd()
}

// ClassVisitor receives the members of one class.
//
// Descriptors are expressed in the vocabulary of the grammar's first
// declared namespace. Grammars without field descriptors pass "".
type ClassVisitor interface {
	VisitField(entry Entry, desc string)
	VisitMethod(entry Entry, desc string)
}
