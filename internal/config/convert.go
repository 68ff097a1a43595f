package config

import (
	"log/slog"

	"symbol-mapper/internal/export"
	"symbol-mapper/internal/grammar"
	"symbol-mapper/internal/model"
	"symbol-mapper/options"
)

// FormatOf returns the parsed source format.
func (s SourceSpec) FormatOf() (model.Format, error) {
	return model.ParseFormat(s.Format)
}

// Binding maps the source's namespaces onto name slots.
func (s SourceSpec) Binding() grammar.Binding {
	return grammar.Binding{
		Intermediary: s.Intermediary,
		Mapped:       s.Named,
		ObfMerged:    s.Obf,
		ObfClient:    s.ObfClient,
		ObfServer:    s.ObfServer,
	}
}

// ProjectOptions returns the options of a project-mode export.
func (e ExportSpec) ProjectOptions(logger *slog.Logger) (export.ProjectOptions, error) {
	ns, err := options.ParseNamespaces(e.Namespaces)
	if err != nil {
		return export.ProjectOptions{}, err
	}

	return export.ProjectOptions{
		Namespaces:  ns,
		OmitMissing: e.OmitMissing,
		Logger:      logger,
	}, nil
}

// MergeOptions returns the options of a merge-mode export.
func (e ExportSpec) MergeOptions(logger *slog.Logger) export.MergeOptions {
	return export.MergeOptions{
		IgnoreMissing: e.IgnoreMissing == nil || *e.IgnoreMissing,
		Quiet:         e.Warnings != nil && !*e.Warnings,
		ObfNamespace:  e.ObfNamespace,
		Parallelism:   e.Parallelism,
		Logger:        logger,
	}
}
