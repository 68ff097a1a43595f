// Package grammar drives mapping grammars into visitors.
//
// A Grammar declares an ordered set of namespaces and replays its records
// as visitor calls. Grammars never build the model themselves: Apply wraps
// a Container in a MappingsVisitor, and Stats is a validation-only visitor.
//
// Supported grammars (selected by model.Format):
//   - SRG: record-tagged lines (CL:, FD:, MD:), namespaces obf and srg
//   - TSRG: tab-indented classes and members, namespaces obf and srg
//   - Tiny: tiny v2 tables with arbitrary namespaces
//
// Malformed records are skipped and reported as diagnostics; parsing never
// aborts on data.
package grammar
