package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Export modes.
const (
	ModeProject = "project"
	ModeMerge   = "merge"
)

// Job is a parsed job file.
type Job struct {
	Version    string          `yaml:"version"`
	Containers []ContainerSpec `yaml:"containers"`
	Export     ExportSpec      `yaml:"export"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// ContainerSpec describes one container: a base source and its overlays.
type ContainerSpec struct {
	Name     string        `yaml:"name"`
	Version  string        `yaml:"version"`
	Source   SourceSpec    `yaml:"source"`
	Overlays []OverlaySpec `yaml:"overlays,omitempty"`
}

// SourceSpec is the base grammar of a container and how its namespaces map
// onto the model's name slots.
type SourceSpec struct {
	Format       string `yaml:"format"`
	Path         string `yaml:"path"`
	Intermediary string `yaml:"intermediary,omitempty"`
	Named        string `yaml:"named,omitempty"`
	Obf          string `yaml:"obf,omitempty"`
	ObfClient    string `yaml:"obfClient,omitempty"`
	ObfServer    string `yaml:"obfServer,omitempty"`
}

// OverlaySpec is one overlay pass.
type OverlaySpec struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

// ExportSpec selects the export mode and its options.
type ExportSpec struct {
	Mode string `yaml:"mode"`
	// Namespaces selects projection columns: named, obfMerged, obfClient,
	// obfServer or all.
	Namespaces  StringOrArray `yaml:"namespaces,omitempty"`
	OmitMissing bool          `yaml:"omitMissing,omitempty"`
	// IgnoreMissing drops merge groups missing from some container instead
	// of padding them. Defaults to true.
	IgnoreMissing *bool `yaml:"ignoreMissing,omitempty"`
	// Warnings reports dropped merge groups as warnings. Defaults to true.
	Warnings     *bool  `yaml:"warnings,omitempty"`
	ObfNamespace string `yaml:"obfNamespace,omitempty"`
	Parallelism  int    `yaml:"parallelism,omitempty"`
	Output       string `yaml:"output,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// This allows YAML fields to accept both "all" and ["named", "obfMerged"].
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
