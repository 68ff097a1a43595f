package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesResolve(t *testing.T) {
	tests := []struct {
		name       string
		names      Names
		optimum    string
		optimumObf string
	}{
		{
			name:       "intermediary only",
			names:      Names{Intermediary: "net/A"},
			optimum:    "net/A",
			optimumObf: "net/A",
		},
		{
			name:       "mapped wins",
			names:      Names{Intermediary: "net/A", Mapped: "Foo"},
			optimum:    "Foo",
			optimumObf: "net/A",
		},
		{
			name:       "merged before client",
			names:      Names{Intermediary: "i", ObfMerged: "m", ObfClient: "c", ObfServer: "s"},
			optimum:    "i",
			optimumObf: "m",
		},
		{
			name:       "client before server",
			names:      Names{Intermediary: "i", ObfClient: "c", ObfServer: "s"},
			optimum:    "i",
			optimumObf: "c",
		},
		{
			name:       "server only",
			names:      Names{Intermediary: "i", ObfServer: "s"},
			optimum:    "i",
			optimumObf: "s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.optimum, tt.names.OptimumName())
			assert.Equal(t, tt.optimumObf, tt.names.OptimumObfName())
		})
	}
}

func TestNamesResolveIsNotCached(t *testing.T) {
	f := NewField("field_1_a", "I")
	assert.Equal(t, "field_1_a", f.OptimumName())

	f.Mapped = "health"
	assert.Equal(t, "health", f.OptimumName())
}

func TestNamesGetSet(t *testing.T) {
	var n Names

	for _, src := range []NameSource{SourceIntermediary, SourceMapped, SourceObfMerged, SourceObfClient, SourceObfServer} {
		_, ok := n.Get(src)
		assert.False(t, ok, src.String())

		n.Set(src, src.String())

		v, ok := n.Get(src)
		assert.True(t, ok)
		assert.Equal(t, src.String(), v)
	}

	assert.Equal(t, "obfClient", n.Or(SourceObfClient))
	assert.Equal(t, "unknown", NameSource(42).String())
}

func TestFormat(t *testing.T) {
	f, err := ParseFormat(" TSRG ")
	assert.NoError(t, err)
	assert.Equal(t, FormatTSRG, f)

	f, err = ParseFormat("mcp-srg")
	assert.NoError(t, err)
	assert.Equal(t, FormatMCPSRG, f)

	_, err = ParseFormat("proguard")
	assert.Error(t, err)

	assert.False(t, FormatSRG.SupportsFieldDescription())
	assert.True(t, FormatTiny.SupportsFieldDescription())
	assert.Equal(t, "Format(99)", Format(99).String())
}
