package model

import "symbol-mapper/internal/descriptor"

// IntermediaryDescToNamed rewrites an intermediary descriptor using the
// optimum names of c.
func IntermediaryDescToNamed(c *Container, desc string) string {
	return descriptor.Remap(desc, func(name string) string {
		if cls := c.GetClass(name); cls != nil {
			return cls.OptimumName()
		}

		return name
	})
}

// IntermediaryDescToObf rewrites an intermediary descriptor using optimum
// obf names. Each class is looked up in c first, then in fallback in order.
// Unknown classes are kept.
func IntermediaryDescToObf(c *Container, desc string, fallback ...*Container) string {
	return descriptor.Remap(desc, func(name string) string {
		if cls := c.GetClass(name); cls != nil {
			return cls.OptimumObfName()
		}

		for _, f := range fallback {
			if cls := f.GetClass(name); cls != nil {
				return cls.OptimumObfName()
			}
		}

		return name
	})
}

// ObfDescOf returns the obf descriptor of a member of c: the declared one
// when the source grammar carried it, else the intermediary descriptor
// rewritten by IntermediaryDescToObf.
func ObfDescOf(c *Container, declared, intermediaryDesc string, fallback ...*Container) string {
	if declared != "" || intermediaryDesc == "" {
		return declared
	}

	return IntermediaryDescToObf(c, intermediaryDesc, fallback...)
}

// IntermediaryResolver resolves class names through idx, as built by
// Container.IndexBy, to intermediary names. Unknown names are kept and
// reported to miss when it is not nil.
func IntermediaryResolver(idx map[string]*Class, miss func(name string)) descriptor.Resolver {
	return func(name string) string {
		if cls, ok := idx[name]; ok {
			return cls.Intermediary
		}

		if miss != nil {
			miss(name)
		}

		return name
	}
}
