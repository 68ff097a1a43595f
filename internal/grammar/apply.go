package grammar

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"symbol-mapper/internal/descriptor"
	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
)

// ErrUnboundIntermediary is returned by Apply when the binding does not name
// a declared intermediary namespace.
var ErrUnboundIntermediary = errors.New("intermediary namespace not declared by grammar")

// Binding assigns grammar namespaces to model name slots. Empty fields are
// unbound.
type Binding struct {
	Intermediary string
	Mapped       string
	ObfMerged    string
	ObfClient    string
	ObfServer    string
}

// SRGBinding binds the SRG family: obf -> obf merged, srg -> intermediary.
var SRGBinding = Binding{Intermediary: NamespaceSrg, ObfMerged: NamespaceObf}

type slot struct {
	src model.NameSource
	ns  string
}

func (b Binding) slots() []slot {
	all := []slot{
		{model.SourceIntermediary, b.Intermediary},
		{model.SourceMapped, b.Mapped},
		{model.SourceObfMerged, b.ObfMerged},
		{model.SourceObfClient, b.ObfClient},
		{model.SourceObfServer, b.ObfServer},
	}

	bound := all[:0]
	for _, s := range all {
		if s.ns != "" {
			bound = append(bound, s)
		}
	}

	return bound
}

// Apply parses g into c. Classes already present in c are extended rather
// than redeclared, so several grammars can populate one container.
func Apply(c *model.Container, g Grammar, b Binding, opts Options) (diagnostic.Diagnostics, error) {
	declared := g.Namespaces()
	if b.Intermediary == "" || !declared.Contains(b.Intermediary) {
		return diagnostic.Diagnostics{}, fmt.Errorf("%w: %q not in %v", ErrUnboundIntermediary, b.Intermediary, declared)
	}

	diags := opts.collector()

	var slots []slot

	for _, s := range b.slots() {
		if !declared.Contains(s.ns) {
			diags.Warnf(diagnostic.CodeUnknownNamespace, s.ns,
				"namespace bound to %s is not declared by the %s grammar", s.src, g.Format())
			continue
		}

		slots = append(slots, s)
	}

	descSource := model.SourceIntermediary
	if len(declared) > 0 {
		found := false

		for _, s := range slots {
			if s.ns == declared[0] {
				descSource = s.src
				found = true

				break
			}
		}

		if !found {
			diags.Warnf(diagnostic.CodeUnknownNamespace, declared[0],
				"descriptor namespace is unbound, descriptors are taken as intermediary")
		}
	}

	v := &builder{
		container:  c,
		slots:      slots,
		descSource: descSource,
		diags:      diags,
		seen:       make(map[string]bool),
	}

	diags.Absorb(g.Parse(v))

	return diags.Diagnostics(), nil
}

// pendingDesc is a member descriptor still expressed in a non-intermediary
// vocabulary.
type pendingDesc struct {
	target *string
	raw    string
}

// builder is the model-building MappingsVisitor.
type builder struct {
	container  *model.Container
	slots      []slot
	descSource model.NameSource
	diags      *diagnostic.Collector
	seen       map[string]bool
	pending    []pendingDesc
}

func (b *builder) VisitStart(Namespaces) {}

func (b *builder) fill(names *model.Names, entry Entry) {
	for _, s := range b.slots {
		if s.src == model.SourceIntermediary {
			continue
		}

		if v, ok := entry.Get(s.ns); ok {
			names.Set(s.src, v)
		}
	}
}

func (b *builder) intermediary(entry Entry) (string, bool) {
	for _, s := range b.slots {
		if s.src == model.SourceIntermediary {
			return entry.Get(s.ns)
		}
	}

	return "", false
}

func (b *builder) VisitClass(entry Entry) ClassVisitor {
	name, ok := b.intermediary(entry)
	if !ok {
		b.diags.Warnf(diagnostic.CodeMissingNamespaceEntry, "", "class without intermediary name skipped")
		return nil
	}

	if b.seen[name] {
		b.diags.Infof(diagnostic.CodeDuplicateClass, name, "class declared more than once, members are merged")
	}

	b.seen[name] = true

	cls := b.container.GetOrAddClass(name)
	b.fill(&cls.Names, entry)

	return &classBuilder{parent: b, class: cls}
}

// setDesc stores a declared descriptor on a member, deferring translation
// until every class is known.
func (b *builder) setDesc(intermediaryDesc, obfDesc *string, desc string) {
	if desc == "" {
		return
	}

	switch b.descSource {
	case model.SourceIntermediary:
		*intermediaryDesc = desc
	case model.SourceObfMerged, model.SourceObfClient, model.SourceObfServer:
		*obfDesc = desc
		b.pending = append(b.pending, pendingDesc{target: intermediaryDesc, raw: desc})
	default:
		b.pending = append(b.pending, pendingDesc{target: intermediaryDesc, raw: desc})
	}
}

func (b *builder) VisitEnd() {
	if len(b.pending) > 0 {
		missing := make(map[string]bool)
		resolve := model.IntermediaryResolver(b.container.IndexBy(b.descSource), func(name string) {
			missing[name] = true
		})

		for _, p := range b.pending {
			*p.target = descriptor.Remap(p.raw, resolve)
		}

		b.pending = nil

		if len(missing) > 0 {
			names := slices.Sorted(maps.Keys(missing))
			b.diags.Infof(diagnostic.CodeUnresolvableDescriptor, "",
				"%d descriptor class(es) kept unchanged, e.g. %s", len(names), names[0])
		}
	}

	for _, cls := range b.container.Classes() {
		if !b.seen[cls.Intermediary] {
			continue
		}

		for _, m := range cls.Methods {
			if m.IntermediaryDesc == "" {
				b.diags.Warnf(diagnostic.CodeBlankRequiredDescriptor, cls.Intermediary+"."+m.Intermediary,
					"method has no intermediary descriptor")
				continue
			}

			if err := descriptor.Validate(m.IntermediaryDesc); err != nil {
				b.diags.Warnf(diagnostic.CodeInvalidDescriptor, cls.Intermediary+"."+m.Intermediary, "%v", err)
			}
		}
	}
}

type classBuilder struct {
	parent *builder
	class  *model.Class
}

func (cb *classBuilder) VisitField(entry Entry, desc string) {
	name, ok := cb.parent.intermediary(entry)
	if !ok {
		cb.parent.diags.Warnf(diagnostic.CodeMissingNamespaceEntry, cb.class.Intermediary,
			"field without intermediary name skipped")
		return
	}

	f := cb.class.GetField(name)
	if f == nil {
		f = model.NewField(name, "")
		cb.class.AddField(f)
	}

	cb.parent.fill(&f.Names, entry)
	cb.parent.setDesc(&f.IntermediaryDesc, &f.ObfDesc, desc)
}

func (cb *classBuilder) VisitMethod(entry Entry, desc string) {
	name, ok := cb.parent.intermediary(entry)
	if !ok {
		cb.parent.diags.Warnf(diagnostic.CodeMissingNamespaceEntry, cb.class.Intermediary,
			"method without intermediary name skipped")
		return
	}

	m := cb.findMethod(name, desc)
	if m == nil {
		m = model.NewMethod(name, "")
		cb.class.AddMethod(m)
	}

	cb.parent.fill(&m.Names, entry)
	cb.parent.setDesc(&m.IntermediaryDesc, &m.ObfDesc, desc)
}

// findMethod matches an existing overload by name and declared descriptor.
func (cb *classBuilder) findMethod(name, desc string) *model.Method {
	if desc == "" || cb.parent.descSource == model.SourceIntermediary {
		return cb.class.GetMethod(name, desc)
	}

	for _, m := range cb.class.Methods {
		if m.Intermediary == name && m.ObfDesc == desc {
			return m
		}
	}

	return nil
}
