// Package build populates containers in two phases: the base grammar, then
// an ordered list of overlay passes that run strictly after it.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"symbol-mapper/internal/config"
	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/grammar"
	"symbol-mapper/internal/model"
	"symbol-mapper/internal/overlay"
)

// Options configure a build.
type Options struct {
	// Parallelism bounds concurrently built containers. Zero means
	// GOMAXPROCS.
	Parallelism int
	Logger      *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}

// Result is a populated container and what was reported while building it.
type Result struct {
	Container   *model.Container
	Diagnostics diagnostic.Diagnostics
}

// Container builds one container from spec. Data problems are reported as
// diagnostics; errors are returned for unreadable resources, unknown
// formats and unbound namespaces.
func Container(ctx context.Context, spec config.ContainerSpec, loader Loader, opts Options) (*Result, error) {
	logger := opts.logger().With(slog.String("container", spec.Name))

	format, err := spec.Source.FormatOf()
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", spec.Name, err)
	}

	content, err := loader.Load(ctx, spec.Source.Path)
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", spec.Name, err)
	}

	// overlays are loaded and parsed up front so a missing table fails the
	// build before anything is applied
	diags := diagnostic.NewCollector(logger, spec.Name)
	passes := make([]overlay.Pass, 0, len(spec.Overlays))

	for _, ov := range spec.Overlays {
		text, err := loader.Load(ctx, ov.Path)
		if err != nil {
			return nil, fmt.Errorf("container %s: %w", spec.Name, err)
		}

		pass, err := overlay.New(overlay.Kind(ov.Kind), text, diags)
		if err != nil {
			return nil, fmt.Errorf("container %s: overlay %s: %w", spec.Name, ov.Path, err)
		}

		passes = append(passes, pass)
	}

	gopts := grammar.Options{Source: spec.Source.Path, Logger: logger}

	g, err := grammar.New(format, content, gopts)
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", spec.Name, err)
	}

	c := model.NewContainer(spec.Version, spec.Name, format)

	parsed, err := grammar.Apply(c, g, spec.Source.Binding(), gopts)
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", spec.Name, err)
	}

	diags.Absorb(parsed)

	for _, pass := range passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pass.Apply(c, diags)
	}

	d := diags.Diagnostics()
	logger.Info("container built",
		slog.String("format", format.String()),
		slog.Int("classes", c.Len()),
		slog.Int("overlays", len(passes)),
		slog.Int("warnings", len(d.Warnings)),
	)

	return &Result{Container: c, Diagnostics: d}, nil
}

// All builds every spec concurrently. Results keep the order of specs. The
// first error cancels the remaining builds.
func All(ctx context.Context, specs []config.ContainerSpec, loader Loader, opts Options) ([]*Result, error) {
	results := make([]*Result, len(specs))

	g, ctx := errgroup.WithContext(ctx)

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g.SetLimit(limit)

	for i, spec := range specs {
		g.Go(func() error {
			res, err := Container(ctx, spec, loader, opts)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Containers returns the containers of results, in order.
func Containers(results []*Result) []*model.Container {
	out := make([]*model.Container, len(results))
	for i, r := range results {
		out[i] = r.Container
	}

	return out
}
