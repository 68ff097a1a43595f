package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol-mapper/internal/grammar"
	"symbol-mapper/internal/model"
	"symbol-mapper/options"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
containers:
  - name: MCP
    version: "1.16.5"
    source: { format: TSRG, path: joined.tsrg }
    overlays:
      - { kind: fields, path: fields.csv }
      - { kind: params, path: params.csv }
  - name: Yarn
    version: "1.16.5"
    source:
      format: tiny
      path: yarn.tiny
export:
  mode: merge
  ignoreMissing: true
  warnings: false
  output: merged.tiny
`

	job, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, "1", job.Version)
	require.Len(t, job.Containers, 2)

	mcp := job.Containers[0]
	assert.Equal(t, "MCP", mcp.Name)
	assert.Equal(t, "tsrg", mcp.Source.Format)
	assert.Equal(t, grammar.SRGBinding, mcp.Source.Binding())
	require.Len(t, mcp.Overlays, 2)
	assert.Equal(t, "params", mcp.Overlays[1].Kind)

	format, err := mcp.Source.FormatOf()
	require.NoError(t, err)
	assert.Equal(t, model.FormatTSRG, format)

	yarn := job.Containers[1].Source.Binding()
	assert.Equal(t, "intermediary", yarn.Intermediary)
	assert.Equal(t, "named", yarn.Mapped)
	assert.Equal(t, "official", yarn.ObfMerged)

	opts := job.Export.MergeOptions(nil)
	assert.True(t, opts.IgnoreMissing)
	assert.True(t, opts.Quiet)
	assert.Equal(t, "obf", opts.ObfNamespace)

	assert.True(t, Validate(job).IsValid())
}

func TestParseDefaults(t *testing.T) {
	job, err := Parse([]byte("containers:\n  - source: { format: srg, path: a.srg, obf: notch }\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", job.Version)
	assert.Equal(t, ModeProject, job.Export.Mode)
	assert.Equal(t, "obf", job.Export.ObfNamespace)
	require.NotNil(t, job.Export.Warnings)
	assert.True(t, *job.Export.Warnings)
	require.NotNil(t, job.Export.IgnoreMissing)
	assert.True(t, job.Export.MergeOptions(nil).IgnoreMissing)

	// explicit bindings are kept
	assert.Equal(t, "notch", job.Containers[0].Source.Obf)
	assert.Equal(t, "srg", job.Containers[0].Source.Intermediary)
}

func TestParseKeepsExplicitPadding(t *testing.T) {
	job, err := Parse([]byte("containers:\n  - source: { format: srg, path: a.srg }\n" +
		"export: { mode: merge, ignoreMissing: false }\n"))
	require.NoError(t, err)

	require.NotNil(t, job.Export.IgnoreMissing)
	assert.False(t, *job.Export.IgnoreMissing)
	assert.False(t, job.Export.MergeOptions(nil).IgnoreMissing)
}

func TestParseNamespacesScalarOrList(t *testing.T) {
	for _, doc := range []string{
		"export: { namespaces: all }",
		"export: { namespaces: [named, obfMerged, obfClient, obfServer] }",
	} {
		job, err := Parse([]byte(doc))
		require.NoError(t, err, doc)

		opts, err := job.Export.ProjectOptions(nil)
		require.NoError(t, err, doc)
		assert.Equal(t, options.NamespaceAll, opts.Namespaces, doc)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("containers: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse job YAML")

	_, err = Parse([]byte("export: { namespaces: { a: b } }"))
	require.Error(t, err)
}

func TestLoadFileResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")

	require.NoError(t, os.WriteFile(path, []byte("containers:\n  - source: { format: srg, path: joined.srg }\n"), 0o644))

	job, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, dir, job.Dir)
	assert.Equal(t, filepath.Join(dir, "joined.srg"), job.Resolve(job.Containers[0].Source.Path))
	assert.Equal(t, "/abs/x.srg", job.Resolve("/abs/x.srg"))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	job, err := Parse([]byte("containers:\n  - name: MCP\n    source: { format: srg, path: joined.srg }\nexport: { namespaces: named }\n"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(job, path))

	back, err := LoadFile(path)
	require.NoError(t, err)

	back.Dir = job.Dir
	assert.Equal(t, job, back)
}
