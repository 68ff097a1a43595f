package export

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
	"symbol-mapper/internal/tiny"
)

// ErrNoContainers is returned by Merge for an empty container list.
var ErrNoContainers = errors.New("merge needs at least one container")

const defaultDescCacheSize = 8192

// MergeOptions configure Merge.
type MergeOptions struct {
	// IgnoreMissing drops every class or member group that some container
	// does not contribute to. When false such groups are padded in the
	// missing columns: classes repeat the first present class, methods and
	// fields the last present member.
	IgnoreMissing bool
	// Quiet records dropped groups as infos instead of warnings.
	Quiet bool
	// ObfNamespace names the first column. Defaults to "obf".
	ObfNamespace string
	// Parallelism bounds concurrent group evaluation. Zero means GOMAXPROCS.
	Parallelism int
	// DescCacheSize bounds the obf descriptor memo. Zero means a default.
	DescCacheSize int
	Logger        *slog.Logger
}

// Merge aligns containers describing the same obfuscated program and
// assembles one table with an (intermediary, named) column pair per
// container, in input order.
func Merge(containers []*model.Container, opts MergeOptions) (*tiny.File, diagnostic.Diagnostics, error) {
	if len(containers) == 0 {
		return nil, diagnostic.Diagnostics{}, ErrNoContainers
	}

	size := opts.DescCacheSize
	if size <= 0 {
		size = defaultDescCacheSize
	}

	cache, err := lru.New[descKey, string](size)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("creating descriptor cache: %w", err)
	}

	m := &merger{
		containers: containers,
		opts:       opts,
		cache:      cache,
	}

	groups, dupes := groupClasses(containers)

	results := make([]groupResult, len(groups))

	var g errgroup.Group

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g.SetLimit(limit)

	for i, grp := range groups {
		g.Go(func() error {
			results[i] = m.mergeClass(grp)
			return nil
		})
	}

	_ = g.Wait()

	diags := diagnostic.NewCollector(opts.Logger, "merge")

	for _, d := range dupes {
		diags.Warnf(diagnostic.CodeDuplicateClass, d,
			"container declares several classes with this obf name, the first one is merged")
	}

	file := &tiny.File{Header: tiny.NewHeader(m.namespaces()...)}

	for _, r := range results {
		diags.Absorb(r.diags)

		if r.class != nil {
			file.Classes = append(file.Classes, r.class)
		}
	}

	return file, diags.Diagnostics(), nil
}

// Namespaces returns the merged header for containers.
func Namespaces(containers []*model.Container, obfNamespace string) []string {
	if obfNamespace == "" {
		obfNamespace = "obf"
	}

	names := []string{obfNamespace}
	seen := map[string]bool{obfNamespace: true}

	for i, c := range containers {
		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c.Name)), " ", "_")

		inter, named := "intermediary_"+name, name
		if name == "" {
			inter, named = "intermediary_"+strconv.Itoa(i+1), "named_"+strconv.Itoa(i+1)
		}

		if seen[inter] || seen[named] {
			inter += "_" + strconv.Itoa(i+1)
			named += "_" + strconv.Itoa(i+1)
		}

		seen[inter], seen[named] = true, true
		names = append(names, inter, named)
	}

	return names
}

type merger struct {
	containers []*model.Container
	opts       MergeOptions
	cache      *lru.Cache[descKey, string]
}

func (m *merger) namespaces() []string {
	return Namespaces(m.containers, m.opts.ObfNamespace)
}

type groupResult struct {
	class *tiny.Class
	diags diagnostic.Diagnostics
}

// missing applies the missing-entry policy to a group with the given
// slots. It reports whether the group survives.
func (m *merger) missing(diags *diagnostic.Collector, present []bool, kind, subject string) bool {
	count := 0

	for _, ok := range present {
		if ok {
			count++
		}
	}

	if count == len(present) {
		return true
	}

	if m.opts.IgnoreMissing {
		if m.opts.Quiet {
			diags.Infof(diagnostic.CodeMissingNamespaceEntry, subject,
				"skipping %s present in %d of %d containers", kind, count, len(present))
		} else {
			diags.Warnf(diagnostic.CodeMissingNamespaceEntry, subject,
				"skipping %s present in %d of %d containers", kind, count, len(present))
		}

		return false
	}

	diags.Infof(diagnostic.CodeMissingNamespaceEntry, subject,
		"padding %s present in %d of %d containers", kind, count, len(present))

	return true
}

// padding picks which present slot fills the missing ones.
type padding int

const (
	padFirst padding = iota
	padLast
)

// pairs interleaves (intermediary, optimum) names per slot after the obf
// name. Empty slots repeat the first or last present member.
func pairs[T any](obf string, slots []T, present []bool, pad padding, names func(T) *model.Names) []string {
	src := -1

	for i, ok := range present {
		if ok {
			src = i
			if pad == padFirst {
				break
			}
		}
	}

	row := make([]string, 0, 1+2*len(slots))
	row = append(row, obf)

	for i := range slots {
		n := names(slots[src])
		if present[i] {
			n = names(slots[i])
		}

		row = append(row, n.Intermediary, n.OptimumName())
	}

	return row
}

func (m *merger) mergeClass(grp *classGroup) groupResult {
	diags := diagnostic.NewCollector(m.opts.Logger, "merge")

	present := make([]bool, len(grp.slots))
	for i, cls := range grp.slots {
		present[i] = cls != nil
	}

	if !m.missing(diags, present, "class", grp.obf) {
		return groupResult{diags: diags.Diagnostics()}
	}

	tc := &tiny.Class{
		Names: pairs(grp.obf, grp.slots, present, padFirst, func(c *model.Class) *model.Names { return &c.Names }),
	}

	methods := m.groupMethods(grp, diags)
	for _, mg := range methods.order {
		sub := methods.groups[mg]
		subject := grp.obf + "." + mg.name + mg.desc

		if !m.missing(diags, sub.present(), "method", subject) {
			continue
		}

		tc.Methods = append(tc.Methods, &tiny.Method{
			Desc:  mg.desc,
			Names: pairs(mg.name, sub.slots, sub.present(), padLast, func(x *model.Method) *model.Names { return &x.Names }),
		})
	}

	fields := m.groupFields(grp, diags)
	for _, fk := range fields.order {
		sub := fields.groups[fk]
		subject := grp.obf + "." + fk.name

		if !m.missing(diags, sub.present(), "field", subject) {
			continue
		}

		tc.Fields = append(tc.Fields, &tiny.Field{
			Desc:  fk.desc,
			Names: pairs(fk.name, sub.slots, sub.present(), padLast, func(x *model.Field) *model.Names { return &x.Names }),
		})
	}

	return groupResult{class: tc, diags: diags.Diagnostics()}
}
