package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateClass is returned by AddClass when the intermediary name is
// already declared.
var ErrDuplicateClass = errors.New("class already declared")

// Container is one populated mapping set for one version.
type Container struct {
	Version string // e.g. "1.16.5"
	Name    string // naming scheme, e.g. "MCP" or "Yarn"
	Format  Format // grammar that produced the base population

	classes []*Class
	index   map[string]int
}

// NewContainer creates an empty container.
func NewContainer(version, name string, format Format) *Container {
	return &Container{
		Version: version,
		Name:    name,
		Format:  format,
		index:   make(map[string]int),
	}
}

// AddClass declares cls. It rejects an empty or already declared
// intermediary name.
func (c *Container) AddClass(cls *Class) error {
	if cls.Intermediary == "" {
		return errors.New("class without intermediary name")
	}

	if _, ok := c.index[cls.Intermediary]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, cls.Intermediary)
	}

	c.index[cls.Intermediary] = len(c.classes)
	c.classes = append(c.classes, cls)

	return nil
}

// GetOrAddClass returns the class declared under intermediary, declaring an
// empty one first if needed.
func (c *Container) GetOrAddClass(intermediary string) *Class {
	if cls := c.GetClass(intermediary); cls != nil {
		return cls
	}

	cls := NewClass(intermediary)
	c.index[intermediary] = len(c.classes)
	c.classes = append(c.classes, cls)

	return cls
}

// GetClass returns the class with the given intermediary name, or nil.
func (c *Container) GetClass(intermediary string) *Class {
	i, ok := c.index[intermediary]
	if !ok {
		return nil
	}

	return c.classes[i]
}

// Classes returns the classes in declaration order. The slice must not be
// modified.
func (c *Container) Classes() []*Class {
	return c.classes
}

// Len returns the number of declared classes.
func (c *Container) Len() int {
	return len(c.classes)
}

// IndexBy snapshots a lookup from class names in the given slots to their
// class. Earlier slots and earlier declarations win on collisions. The
// snapshot does not track later mutations.
func (c *Container) IndexBy(chain ...NameSource) map[string]*Class {
	idx := make(map[string]*Class, len(c.classes))

	for _, src := range chain {
		for _, cls := range c.classes {
			if name, ok := cls.Get(src); ok {
				if _, seen := idx[name]; !seen {
					idx[name] = cls
				}
			}
		}
	}

	return idx
}

// Class is a mapped class. Its intermediary name is the join key.
type Class struct {
	Names

	Methods []*Method
	Fields  []*Field
}

// NewClass creates a class with the given intermediary name.
func NewClass(intermediary string) *Class {
	return &Class{Names: Names{Intermediary: intermediary}}
}

// AddMethod appends m to the class.
func (c *Class) AddMethod(m *Method) {
	c.Methods = append(c.Methods, m)
}

// AddField appends f to the class.
func (c *Class) AddField(f *Field) {
	c.Fields = append(c.Fields, f)
}

// GetMethod returns the first method with the given intermediary name and,
// when desc is non-empty, intermediary descriptor.
func (c *Class) GetMethod(intermediary, desc string) *Method {
	for _, m := range c.Methods {
		if m.Intermediary == intermediary && (desc == "" || m.IntermediaryDesc == desc) {
			return m
		}
	}

	return nil
}

// GetField returns the first field with the given intermediary name.
func (c *Class) GetField(intermediary string) *Field {
	for _, f := range c.Fields {
		if f.Intermediary == intermediary {
			return f
		}
	}

	return nil
}

// Method is a mapped method.
type Method struct {
	Names

	// IntermediaryDesc is expressed with intermediary class names.
	IntermediaryDesc string
	// ObfDesc is the descriptor as declared by the source grammar, when the
	// grammar carries one. Empty otherwise.
	ObfDesc string
	// Args is nil until a parameter-name source is applied.
	Args []MethodArg
}

// NewMethod creates a method with the given intermediary name and descriptor.
func NewMethod(intermediary, desc string) *Method {
	return &Method{Names: Names{Intermediary: intermediary}, IntermediaryDesc: desc}
}

// AddArgs appends parameter names, allocating the list on first use.
func (m *Method) AddArgs(args ...MethodArg) {
	if m.Args == nil {
		m.Args = make([]MethodArg, 0, len(args))
	}

	m.Args = append(m.Args, args...)
}

// ArgName returns the name of the parameter at index. Later entries win.
func (m *Method) ArgName(index int) (string, bool) {
	for i := len(m.Args) - 1; i >= 0; i-- {
		if m.Args[i].Index == index {
			return m.Args[i].Name, true
		}
	}

	return "", false
}

// Field is a mapped field.
type Field struct {
	Names

	IntermediaryDesc string
	ObfDesc          string
}

// NewField creates a field with the given intermediary name and descriptor.
func NewField(intermediary, desc string) *Field {
	return &Field{Names: Names{Intermediary: intermediary}, IntermediaryDesc: desc}
}

// MethodArg is a zero-based parameter index and its display name.
type MethodArg struct {
	Index int
	Name  string
}
