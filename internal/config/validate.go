package config

import (
	"fmt"
	"strings"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/internal/overlay"
	"symbol-mapper/options"
)

// Validate checks a job for structural problems. It reports every problem
// found rather than stopping at the first one.
func Validate(job *Job) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if job == nil {
		res.AddError("job_is_nil", "job is nil", "", "")
		return res
	}

	if job.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported job version %q", job.Version), "", "version")
	}

	if len(job.Containers) == 0 {
		res.AddError("no_containers", "job declares no containers", "", "containers")
	}

	seen := make(map[string]bool)

	for i := range job.Containers {
		validateContainer(res, &job.Containers[i], i, seen)
	}

	validateExport(res, job)

	return res
}

func validateContainer(res *diagnostic.Diagnostics, cs *ContainerSpec, i int, seen map[string]bool) {
	subject := fmt.Sprintf("containers[%d]", i)
	if cs.Name != "" {
		subject = cs.Name

		key := strings.ToLower(cs.Name)
		if seen[key] {
			res.AddWarning("duplicate_container", fmt.Sprintf("container name %q is used more than once", cs.Name), "", subject)
		}

		seen[key] = true
	}

	if _, err := model.ParseFormat(cs.Source.Format); err != nil {
		res.AddError("unknown_format", err.Error(), subject, "source.format")
	}

	if cs.Source.Path == "" {
		res.AddError("missing_path", "source has no path", subject, "source.path")
	}

	if cs.Source.Intermediary == "" {
		res.AddError("unbound_intermediary", "source binds no intermediary namespace", subject, "source.intermediary")
	}

	for j, ov := range cs.Overlays {
		field := fmt.Sprintf("overlays[%d]", j)

		switch overlay.Kind(ov.Kind) {
		case overlay.KindFields, overlay.KindMethods, overlay.KindParams:
		default:
			res.AddError("unknown_overlay_kind", fmt.Sprintf("unknown overlay kind %q", ov.Kind), subject, field)
		}

		if ov.Path == "" {
			res.AddError("missing_path", "overlay has no path", subject, field)
		}
	}
}

func validateExport(res *diagnostic.Diagnostics, job *Job) {
	ex := &job.Export

	switch ex.Mode {
	case ModeProject:
		if len(job.Containers) > 1 {
			res.AddError("project_needs_one_container",
				fmt.Sprintf("project mode exports one container, job declares %d", len(job.Containers)), "", "export.mode")
		}

		if _, err := options.ParseNamespaces(ex.Namespaces); err != nil {
			res.AddError("unknown_namespace", err.Error(), "", "export.namespaces")
		}
	case ModeMerge:
		if len(ex.Namespaces) > 0 {
			res.AddWarning("namespaces_ignored", "merge mode writes intermediary and named columns only", "", "export.namespaces")
		}
	default:
		res.AddError("unknown_mode", fmt.Sprintf("unknown export mode %q", ex.Mode), "", "export.mode")
	}

	if ex.Parallelism < 0 {
		res.AddError("invalid_parallelism", "parallelism must not be negative", "", "export.parallelism")
	}
}
