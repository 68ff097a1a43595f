package options

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=NamespaceEnum -output=namespace_string.go

// NamespaceEnum selects optional projection columns. The intermediary
// column is always written and has no flag.
type NamespaceEnum int

const (
	NamespaceNamed     NamespaceEnum = 1 << iota // mapped names, falling back to intermediary
	NamespaceObfMerged                           // obf names shared by client and server
	NamespaceObfClient                           // client-only obf names
	NamespaceObfServer                           // server-only obf names

	NamespaceAll  NamespaceEnum = (1 << iota) - 1 // all namespaces combined
	NamespaceNone NamespaceEnum = 0               // intermediary only
)

// Has reports whether every flag of other is set.
func (n NamespaceEnum) Has(other NamespaceEnum) bool {
	return n&other == other
}

// ParseNamespaces combines flags named by tags ("named", "obfMerged",
// "obfClient", "obfServer", "all"). Matching is case-insensitive.
func ParseNamespaces(tags []string) (NamespaceEnum, error) {
	var n NamespaceEnum

	for _, tag := range tags {
		switch strings.ToLower(strings.TrimSpace(tag)) {
		case "named":
			n |= NamespaceNamed
		case "obfmerged":
			n |= NamespaceObfMerged
		case "obfclient":
			n |= NamespaceObfClient
		case "obfserver":
			n |= NamespaceObfServer
		case "all":
			n |= NamespaceAll
		default:
			return NamespaceNone, fmt.Errorf("unknown namespace %q", tag)
		}
	}

	return n, nil
}
