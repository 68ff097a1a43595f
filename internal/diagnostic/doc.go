// Package diagnostic provides structured warnings and errors for mapping
// ingestion and merging.
//
// Nothing in the core aborts on bad data. Malformed records, missing merge
// entries and unresolvable descriptor classes are recorded here and logged,
// and processing continues.
package diagnostic
