package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"symbol-mapper/internal/common"
	"symbol-mapper/internal/grammar"
	"symbol-mapper/internal/model"
)

// Default namespace bindings per source format.
var defaultBindings = map[model.Format]SourceSpec{
	model.FormatSRG:     {Obf: grammar.NamespaceObf, Intermediary: grammar.NamespaceSrg},
	model.FormatTSRG:    {Obf: grammar.NamespaceObf, Intermediary: grammar.NamespaceSrg},
	model.FormatMCPSRG:  {Obf: grammar.NamespaceObf, Intermediary: grammar.NamespaceSrg},
	model.FormatMCPTSRG: {Obf: grammar.NamespaceObf, Intermediary: grammar.NamespaceSrg},
	model.FormatTiny:    {Obf: "official", Intermediary: "intermediary", Named: "named"},
}

// LoadFile loads and parses a job file from the given path.
func LoadFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	job, err := Parse(data)
	if err != nil {
		return nil, err
	}

	job.Dir = filepath.Dir(path)

	return job, nil
}

// Parse parses YAML data into a Job.
func Parse(data []byte) (*Job, error) {
	var job Job

	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	applyDefaults(&job)

	return &job, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(job *Job) {
	if job.Version == "" {
		job.Version = "1"
	}

	if job.Export.Mode == "" {
		job.Export.Mode = ModeProject
	}

	if job.Export.ObfNamespace == "" {
		job.Export.ObfNamespace = grammar.NamespaceObf
	}

	if job.Export.IgnoreMissing == nil {
		on := true
		job.Export.IgnoreMissing = &on
	}

	if job.Export.Warnings == nil {
		on := true
		job.Export.Warnings = &on
	}

	for i := range job.Containers {
		src := &job.Containers[i].Source
		src.Format = strings.ToLower(strings.TrimSpace(src.Format))

		format, err := model.ParseFormat(src.Format)
		if err != nil {
			// reported by Validate
			continue
		}

		def := defaultBindings[format]
		if src.Obf == "" && src.ObfClient == "" && src.ObfServer == "" {
			src.Obf = def.Obf
		}

		src.Intermediary = common.FirstNonEmpty(src.Intermediary, def.Intermediary)
		src.Named = common.FirstNonEmpty(src.Named, def.Named)
	}
}

// Resolve returns path relative to the job directory unless it is absolute.
func (j *Job) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || j.Dir == "" {
		return path
	}

	return filepath.Join(j.Dir, path)
}

// Marshal serializes a Job to YAML.
func Marshal(job *Job) ([]byte, error) {
	return yaml.Marshal(job)
}

// WriteFile writes a Job to the given path.
func WriteFile(job *Job, path string) error {
	data, err := Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job file %s: %w", path, err)
	}

	return nil
}
