package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"symbol-mapper/internal/build"
	"symbol-mapper/internal/config"
	"symbol-mapper/internal/descriptor"
	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/export"
	"symbol-mapper/internal/grammar"
	"symbol-mapper/internal/match"
	"symbol-mapper/internal/model"
	"symbol-mapper/internal/tiny"
)

// loadJob reads and validates the job file named by flags.
func loadJob(flags *commonFlags) (*config.Job, error) {
	if flags.config == "" {
		return nil, fmt.Errorf("%w: -config is required", errUsage)
	}

	job, err := config.LoadFile(flags.config)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(job).Error(); err != nil {
		return nil, fmt.Errorf("invalid job %s: %w", flags.config, err)
	}

	return job, nil
}

func buildAll(ctx context.Context, job *config.Job, logger *slog.Logger) ([]*build.Result, error) {
	return build.All(ctx, job.Containers, build.FileLoader{Dir: job.Dir}, build.Options{
		Parallelism: job.Export.Parallelism,
		Logger:      logger,
	})
}

func summarize(w io.Writer, label string, d diagnostic.Diagnostics) {
	fmt.Fprintf(w, "%s: %d error(s), %d warning(s), %d info(s)\n", label, len(d.Errors), len(d.Warnings), len(d.Infos))
}

func runExport(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags commonFlags
	flags.register(fs)

	out := fs.String("out", os.Getenv(envOutput), "output path, overrides export.output (env "+envOutput+")")

	if err := fs.Parse(args); err != nil {
		return err
	}

	job, err := loadJob(&flags)
	if err != nil {
		return err
	}

	logger := flags.logger(stderr)

	results, err := buildAll(ctx, job, logger)
	if err != nil {
		return err
	}

	for _, r := range results {
		summarize(stdout, r.Container.Name, r.Diagnostics)
	}

	var (
		file  *tiny.File
		diags diagnostic.Diagnostics
	)

	switch job.Export.Mode {
	case config.ModeMerge:
		file, diags, err = export.Merge(build.Containers(results), job.Export.MergeOptions(logger))
		if err != nil {
			return err
		}
	default:
		opts, err := job.Export.ProjectOptions(logger)
		if err != nil {
			return err
		}

		file, diags = export.Project(results[0].Container, opts)
	}

	summarize(stdout, job.Export.Mode, diags)

	path := *out
	if path == "" {
		path = job.Resolve(job.Export.Output)
	}

	if path == "" {
		return tiny.Write(stdout, file)
	}

	if err := tiny.WriteFile(file, path); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %d classes to %s\n", len(file.Classes), path)

	return nil
}

func runValidate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags commonFlags
	flags.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	job, err := loadJob(&flags)
	if err != nil {
		return err
	}

	logger := flags.logger(stderr)
	loader := build.FileLoader{Dir: job.Dir}
	failed := false

	for _, cs := range job.Containers {
		format, err := cs.Source.FormatOf()
		if err != nil {
			return err
		}

		content, err := loader.Load(ctx, cs.Source.Path)
		if err != nil {
			return err
		}

		gopts := grammar.Options{Source: cs.Source.Path, Logger: logger}

		g, err := grammar.New(format, content, gopts)
		if err != nil {
			return err
		}

		diags := diagnostic.NewCollector(logger, cs.Source.Path)
		stats := grammar.NewStats(diags)
		diags.Absorb(g.Parse(stats))

		fmt.Fprintf(stdout, "%s [%s] %s: %d classes, %d fields, %d methods\n",
			cs.Name, format, strings.Join(stats.Namespaces, ","), stats.Classes, stats.Fields, stats.Methods)

		d := diags.Diagnostics()
		summarize(stdout, cs.Source.Path, d)

		for _, w := range d.Warnings {
			fmt.Fprintln(stdout, "  "+w.String())
		}

		failed = failed || d.HasErrors()
	}

	if failed {
		return fmt.Errorf("validation failed")
	}

	return nil
}

func runSearch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags commonFlags
	flags.register(fs)

	container := fs.String("container", "", "search only the container with this name")
	kind := fs.String("kind", "", "restrict to class, method or field")
	limit := fs.Int("limit", 10, "maximum number of results")
	loose := fs.Bool("loose", false, "ignore naming conventions and accessor prefixes")
	minScore := fs.Float64("min", 0, "drop results scoring below this")
	best := fs.Bool("best", false, "print only a clear winner per container")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: search needs exactly one term", errUsage)
	}

	term := fs.Arg(0)

	opts := match.SearchOptions{Limit: *limit, Loose: *loose}
	if *best {
		opts.Limit = 0
	}

	switch *kind {
	case "":
	case "class":
		opts.Kinds = []match.Kind{match.KindClass}
	case "method":
		opts.Kinds = []match.Kind{match.KindMethod}
	case "field":
		opts.Kinds = []match.Kind{match.KindField}
	default:
		return fmt.Errorf("%w: unknown kind %q", errUsage, *kind)
	}

	job, err := loadJob(&flags)
	if err != nil {
		return err
	}

	results, err := buildAll(ctx, job, flags.logger(stderr))
	if err != nil {
		return err
	}

	for _, c := range build.Containers(results) {
		if *container != "" && !strings.EqualFold(c.Name, *container) {
			continue
		}

		list := match.Search(c, term, opts)
		if *minScore > 0 {
			list = list.AboveThreshold(*minScore)
		}

		if *best {
			if cand := list.HighConfidence(match.DefaultMinScore, match.DefaultMinGap); cand != nil {
				printCandidate(stdout, c, cand)
			} else {
				fmt.Fprintf(stdout, "# %s: no clear match\n", c.Name)
			}

			continue
		}

		for i := range list {
			printCandidate(stdout, c, &list[i])
		}

		if list.IsAmbiguous(match.DefaultAmbiguityThreshold) {
			fmt.Fprintf(stdout, "# %s: ambiguous, top scores within %.2f\n", c.Name, match.DefaultAmbiguityThreshold)
		}
	}

	return nil
}

func printCandidate(w io.Writer, c *model.Container, cand *match.Candidate) {
	names := cand.Names()

	fuzzy := ""
	if cand.Fuzzy {
		fuzzy = " ~"
	}

	line := fmt.Sprintf("%s\t%s\t%.2f%s\t%s\t%s -> %s",
		c.Name, cand.Kind, cand.Score, fuzzy, cand.Key(), names.OptimumObfName(), names.OptimumName())

	switch {
	case cand.Method != nil:
		if cand.Method.IntermediaryDesc != "" {
			line += "\t" + model.IntermediaryDescToNamed(c, cand.Method.IntermediaryDesc)
		}

		if args := argList(cand.Method); args != "" {
			line += "\targs: " + args
		}
	case cand.Field != nil:
		if cand.Field.IntermediaryDesc != "" {
			line += "\t" + descriptor.LocalizeFieldDesc(model.IntermediaryDescToNamed(c, cand.Field.IntermediaryDesc))
		}
	}

	fmt.Fprintln(w, line)
}

// argList renders the parameter names of m by index, e.g. "1 pos, 2 state".
func argList(m *model.Method) string {
	var indices []int

	for _, a := range m.Args {
		if !slices.Contains(indices, a.Index) {
			indices = append(indices, a.Index)
		}
	}

	slices.Sort(indices)

	parts := make([]string, 0, len(indices))

	for _, i := range indices {
		name, _ := m.ArgName(i)
		parts = append(parts, strconv.Itoa(i)+" "+name)
	}

	return strings.Join(parts, ", ")
}
