package export

import (
	"slices"

	"symbol-mapper/internal/diagnostic"
	"symbol-mapper/internal/model"
)

// classGroup holds at most one class per container sharing an obf name.
type classGroup struct {
	obf   string
	slots []*model.Class
}

// groupClasses groups classes of all containers by optimum obf name, in
// order of first appearance. A second class with the same obf name in one
// container is reported and left out.
func groupClasses(containers []*model.Container) ([]*classGroup, []string) {
	var (
		groups []*classGroup
		dupes  []string
	)

	index := make(map[string]*classGroup)

	for ci, c := range containers {
		for _, cls := range c.Classes() {
			key := cls.OptimumObfName()

			grp, ok := index[key]
			if !ok {
				grp = &classGroup{obf: key, slots: make([]*model.Class, len(containers))}
				index[key] = grp
				groups = append(groups, grp)
			}

			if grp.slots[ci] != nil {
				dupes = append(dupes, key)
				continue
			}

			grp.slots[ci] = cls
		}
	}

	return groups, dupes
}

// memberKey aligns members across containers: obf descriptor and obf name.
type memberKey struct {
	desc string
	name string
}

type memberGroup[T any] struct {
	slots []T
	has   []bool
}

func (g *memberGroup[T]) present() []bool {
	return g.has
}

// memberGroups keeps member groups in order of first appearance.
type memberGroups[T any] struct {
	order  []memberKey
	groups map[memberKey]*memberGroup[T]
	n      int
}

func newMemberGroups[T any](n int) *memberGroups[T] {
	return &memberGroups[T]{groups: make(map[memberKey]*memberGroup[T]), n: n}
}

// add places member in slot. It reports false when the slot is taken.
func (mg *memberGroups[T]) add(key memberKey, slot int, member T) bool {
	g, ok := mg.groups[key]
	if !ok {
		g = &memberGroup[T]{slots: make([]T, mg.n), has: make([]bool, mg.n)}
		mg.groups[key] = g
		mg.order = append(mg.order, key)
	}

	if g.has[slot] {
		return false
	}

	g.slots[slot] = member
	g.has[slot] = true

	return true
}

// remove drops key from the group set.
func (mg *memberGroups[T]) remove(key memberKey) {
	delete(mg.groups, key)
	mg.order = slices.DeleteFunc(mg.order, func(k memberKey) bool { return k == key })
}

// descKey memoizes obf descriptors per owning container.
type descKey struct {
	container int
	desc      string
}

// obfDesc returns the obf descriptor of a member owned by container ci. A
// declared obf descriptor wins; otherwise class names are resolved in the
// owning container first, then in the other containers in input order.
func (m *merger) obfDesc(ci int, declared, intermediary string) string {
	if declared != "" || intermediary == "" {
		return declared
	}

	key := descKey{container: ci, desc: intermediary}
	if v, ok := m.cache.Get(key); ok {
		return v
	}

	others := make([]*model.Container, 0, len(m.containers)-1)
	others = append(others, m.containers[:ci]...)
	others = append(others, m.containers[ci+1:]...)

	v := model.ObfDescOf(m.containers[ci], declared, intermediary, others...)

	m.cache.Add(key, v)

	return v
}

func (m *merger) groupMethods(grp *classGroup, diags *diagnostic.Collector) *memberGroups[*model.Method] {
	groups := newMemberGroups[*model.Method](len(grp.slots))

	for ci, cls := range grp.slots {
		if cls == nil {
			continue
		}

		for _, method := range cls.Methods {
			key := memberKey{
				desc: m.obfDesc(ci, method.ObfDesc, method.IntermediaryDesc),
				name: method.OptimumObfName(),
			}

			if !groups.add(key, ci, method) {
				diags.Infof(diagnostic.CodeDuplicateMember, grp.obf+"."+key.name+key.desc,
					"%s declares the method twice, the first one is merged", m.containers[ci].Name)
			}
		}
	}

	return groups
}

func (m *merger) groupFields(grp *classGroup, diags *diagnostic.Collector) *memberGroups[*model.Field] {
	groups := newMemberGroups[*model.Field](len(grp.slots))

	for ci, cls := range grp.slots {
		if cls == nil {
			continue
		}

		for _, field := range cls.Fields {
			key := memberKey{
				desc: m.obfDesc(ci, field.ObfDesc, field.IntermediaryDesc),
				name: field.OptimumObfName(),
			}

			if !groups.add(key, ci, field) {
				diags.Infof(diagnostic.CodeDuplicateMember, grp.obf+"."+key.name,
					"%s declares the field twice, the first one is merged", m.containers[ci].Name)
			}
		}
	}

	foldBlankDescriptors(groups, func(key memberKey, candidates int) {
		diags.Infof(diagnostic.CodeConflictingObfuscatedKey, grp.obf+"."+key.name,
			"field without descriptor matches %d typed field(s) and is merged on its own", candidates)
	})

	return groups
}

// foldBlankDescriptors joins a field group without descriptor into the only
// same-named group that has one, when their container slots do not
// overlap. Containers from formats without field descriptors then still
// align with containers that carry them. Groups that cannot be joined are
// passed to conflict and kept apart.
func foldBlankDescriptors[T any](groups *memberGroups[T], conflict func(key memberKey, candidates int)) {
	for _, key := range slices.Clone(groups.order) {
		if key.desc != "" {
			continue
		}

		var targets []memberKey

		for _, other := range groups.order {
			if other.name == key.name && other.desc != "" {
				targets = append(targets, other)
			}
		}

		if len(targets) == 0 {
			continue
		}

		if len(targets) > 1 {
			conflict(key, len(targets))
			continue
		}

		src, dst := groups.groups[key], groups.groups[targets[0]]

		overlap := false
		for i := range src.has {
			if src.has[i] && dst.has[i] {
				overlap = true
				break
			}
		}

		if overlap {
			conflict(key, 1)
			continue
		}

		for i := range src.has {
			if src.has[i] {
				dst.slots[i] = src.slots[i]
				dst.has[i] = true
			}
		}

		groups.remove(key)
	}
}
