package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format tags the grammar that produced a container.
type Format int

const (
	FormatUnknown Format = iota // unknown
	FormatSRG                   // srg
	FormatTSRG                  // tsrg
	FormatTiny                  // tiny
	FormatMCPSRG                // mcp-srg
	FormatMCPTSRG               // mcp-tsrg
)

// ParseFormat returns the Format for a tag as produced by String.
func ParseFormat(tag string) (Format, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))

	for f := FormatSRG; f <= FormatMCPTSRG; f++ {
		if f.String() == tag {
			return f, nil
		}
	}

	return FormatUnknown, fmt.Errorf("unknown mappings format %q", tag)
}

// SupportsFieldDescription reports whether containers of this format carry
// field descriptors.
func (f Format) SupportsFieldDescription() bool {
	switch f {
	case FormatSRG, FormatTSRG, FormatMCPSRG, FormatMCPTSRG:
		return false
	default:
		return true
	}
}
