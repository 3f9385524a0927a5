package di

import (
	"github.com/kbukum/scopekit/dag"
	apperrors "github.com/kbukum/scopekit/errors"
)

// validate checks decls before any binding is installed: malformed
// declarations first, then duplicates, unsatisfied keys and cycles.
func (c *Container) validate(decls []Declaration) error {
	for _, d := range decls {
		if d.err != nil {
			return d.err
		}
		if err := d.check(); err != nil {
			return err
		}
	}

	local := make(map[Key]Declaration, len(decls))
	roots := make([]Key, 0, len(decls))
	for _, d := range decls {
		if _, dup := local[d.key]; dup {
			return apperrors.DuplicateBinding(c.name, d.key.String())
		}
		local[d.key] = d
		roots = append(roots, d.key)
	}

	for _, d := range decls {
		for _, dep := range d.edges() {
			if _, ok := local[dep]; ok {
				continue
			}
			if c.parent != nil && c.parent.lookup(dep) != nil {
				continue
			}
			return apperrors.UnsatisfiedDependency(c.name, keyStrings([]Key{d.key, dep}))
		}
	}

	// Parent bindings were checked when the parent was built and can never
	// point back into this container, so the walk stops at them.
	cycle := dag.FindCycle(roots, func(k Key) []Key {
		return local[k].edges()
	})
	if cycle != nil {
		return apperrors.CyclicDependency(c.name, keyStrings(cycle))
	}
	return nil
}

// check rejects declarations that were not built by Provide, Bind, Context
// or Instance, such as a zero Declaration.
func (d Declaration) check() error {
	if d.key.Type == nil {
		return apperrors.InvalidBinding(d.key.String(), "declaration has no key type")
	}
	switch d.kind {
	case KindConstruct:
		if !d.fn.IsValid() {
			return apperrors.InvalidBinding(d.key.String(), "declaration has no provider")
		}
	case KindDelegate:
		if d.target.Type == nil {
			return apperrors.InvalidBinding(d.key.String(), "declaration has no target")
		}
	case KindContext, KindInstance:
	default:
		return apperrors.InvalidBinding(d.key.String(), "unknown binding kind")
	}
	return nil
}
