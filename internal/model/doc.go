// Package model holds the in-memory symbol mapping model.
//
// A Container is one mapping set for one version. It owns Classes in
// declaration order; each Class owns its Methods and Fields. Every entity is
// keyed by its intermediary name, which is never empty.
//
// Optional names (mapped, obf merged/client/server) are resolved through
// explicit NameSource chains, see Names.Resolve.
package model
