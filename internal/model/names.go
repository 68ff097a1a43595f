package model

import "symbol-mapper/internal/common"

// NameSource identifies one naming slot of an entity.
type NameSource int

const (
	SourceIntermediary NameSource = iota
	SourceMapped
	SourceObfMerged
	SourceObfClient
	SourceObfServer
)

// String returns the slot name.
func (s NameSource) String() string {
	switch s {
	case SourceIntermediary:
		return "intermediary"
	case SourceMapped:
		return "mapped"
	case SourceObfMerged:
		return "obfMerged"
	case SourceObfClient:
		return "obfClient"
	case SourceObfServer:
		return "obfServer"
	default:
		return common.UnknownStr
	}
}

// Fallback chains. Resolution always terminates at the intermediary name.
var (
	OptimumChain    = []NameSource{SourceMapped}
	OptimumObfChain = []NameSource{SourceObfMerged, SourceObfClient, SourceObfServer}
)

// Names is the per-namespace naming of a class, method or field.
// An empty string means the entity has no name in that slot.
type Names struct {
	Intermediary string
	Mapped       string
	ObfMerged    string
	ObfClient    string
	ObfServer    string
}

// Get returns the name stored in slot src and whether it is present.
func (n *Names) Get(src NameSource) (string, bool) {
	var v string

	switch src {
	case SourceIntermediary:
		v = n.Intermediary
	case SourceMapped:
		v = n.Mapped
	case SourceObfMerged:
		v = n.ObfMerged
	case SourceObfClient:
		v = n.ObfClient
	case SourceObfServer:
		v = n.ObfServer
	}

	return v, v != ""
}

// Set stores name in slot src.
func (n *Names) Set(src NameSource, name string) {
	switch src {
	case SourceIntermediary:
		n.Intermediary = name
	case SourceMapped:
		n.Mapped = name
	case SourceObfMerged:
		n.ObfMerged = name
	case SourceObfClient:
		n.ObfClient = name
	case SourceObfServer:
		n.ObfServer = name
	}
}

// Resolve walks chain and returns the first present name, falling back to
// the intermediary name.
func (n *Names) Resolve(chain ...NameSource) string {
	for _, src := range chain {
		if v, ok := n.Get(src); ok {
			return v
		}
	}

	return n.Intermediary
}

// OptimumName is the mapped name if present, else the intermediary name.
func (n *Names) OptimumName() string {
	return n.Resolve(OptimumChain...)
}

// OptimumObfName is the first present obf name (merged, client, server),
// else the intermediary name.
func (n *Names) OptimumObfName() string {
	return n.Resolve(OptimumObfChain...)
}

// Or returns the name in slot src, or the intermediary name when absent.
func (n *Names) Or(src NameSource) string {
	return n.Resolve(src)
}
