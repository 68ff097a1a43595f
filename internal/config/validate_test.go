package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, doc string) []string {
	t.Helper()

	job, err := Parse([]byte(doc))
	require.NoError(t, err)

	res := Validate(job)

	var out []string
	for _, d := range res.Errors {
		out = append(out, d.Code)
	}

	for _, d := range res.Warnings {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "valid project",
			doc:  "containers:\n  - source: { format: srg, path: a.srg }\nexport: { namespaces: [named] }\n",
		},
		{
			name: "no containers",
			doc:  "export: { mode: merge }\n",
			want: []string{"no_containers"},
		},
		{
			name: "bad version",
			doc:  "version: \"2\"\ncontainers:\n  - source: { format: srg, path: a.srg }\n",
			want: []string{"unsupported_version"},
		},
		{
			name: "unknown format and missing path",
			doc:  "containers:\n  - source: { format: proguard }\n",
			want: []string{"unknown_format", "missing_path", "unbound_intermediary"},
		},
		{
			name: "bad overlay",
			doc:  "containers:\n  - source: { format: srg, path: a.srg }\n    overlays: [{ kind: classes }]\n",
			want: []string{"unknown_overlay_kind", "missing_path"},
		},
		{
			name: "project with two containers",
			doc: "containers:\n  - source: { format: srg, path: a.srg }\n" +
				"  - source: { format: srg, path: b.srg }\n",
			want: []string{"project_needs_one_container"},
		},
		{
			name: "unknown namespace",
			doc:  "containers:\n  - source: { format: srg, path: a.srg }\nexport: { namespaces: [official] }\n",
			want: []string{"unknown_namespace"},
		},
		{
			name: "unknown mode",
			doc:  "containers:\n  - source: { format: srg, path: a.srg }\nexport: { mode: diff }\n",
			want: []string{"unknown_mode"},
		},
		{
			name: "merge warnings",
			doc: "containers:\n  - { name: A, source: { format: srg, path: a.srg } }\n" +
				"  - { name: a, source: { format: srg, path: b.srg } }\n" +
				"export: { mode: merge, namespaces: all }\n",
			want: []string{"duplicate_container", "namespaces_ignored"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(t, tt.doc))
		})
	}
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	assert.False(t, res.IsValid())
	assert.Error(t, res.Error())
}
