// Package export assembles tiny v2 tables from populated containers.
//
// Two modes are provided:
//   - Project writes one container with a caller-selected set of optional
//     namespaces, falling back to the intermediary name for absent names.
//   - Merge aligns N containers that share an obfuscation by obf name and
//     writes [obf, intermediary_1, named_1, ...] rows.
//
// Neither mode fails on inconsistent data. Missing entries are handled by
// the caller-selected policy and reported as diagnostics.
package export
