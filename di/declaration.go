package di

import (
	"reflect"

	apperrors "github.com/kbukum/scopekit/errors"
)

var errorType = reflect.TypeFor[error]()

// Declaration describes how to produce the value for one key. Declarations
// are built with Provide, Bind, Context and Instance and handed to New or
// Child; they are validated when the container is built.
type Declaration struct {
	key         Key
	kind        Kind
	scope       Scope
	deps        []Key
	target      Key
	fn          reflect.Value
	returnsErr  bool
	value       any
	eager       bool
	module      string
	description string
	err         *apperrors.AppError
}

// Key returns the key the declaration binds.
func (d Declaration) Key() Key { return d.key }

// BindOption customizes a declaration.
type BindOption func(*Declaration)

// Qualified binds the declaration under qualifier instead of the bare type.
func Qualified(qualifier string) BindOption {
	return func(d *Declaration) {
		d.key.Qualifier = qualifier
	}
}

// As sets the scope of the declaration.
func As(scope Scope) BindOption {
	return func(d *Declaration) {
		d.scope = scope
	}
}

// Eager marks a singleton to be built by Container.Warm instead of on first use.
func Eager() BindOption {
	return func(d *Declaration) {
		d.eager = true
		d.scope = Singleton
	}
}

// Params overrides the dependency keys of a provider, one per parameter.
// Use it to request qualified dependencies.
func Params(keys ...Key) BindOption {
	return func(d *Declaration) {
		if d.kind != KindConstruct {
			d.fail("params only apply to provider functions")
			return
		}
		if len(keys) != len(d.deps) {
			d.fail("params count does not match provider parameters")
			return
		}
		for i, k := range keys {
			if k.Type != d.deps[i].Type {
				d.fail("param " + k.String() + " does not match parameter type " + d.deps[i].Type.String())
				return
			}
		}
		d.deps = append([]Key(nil), keys...)
	}
}

// Target sets the qualifier of the implementation key a Bind delegates to.
func Target(qualifier string) BindOption {
	return func(d *Declaration) {
		if d.kind != KindDelegate {
			d.fail("target only applies to delegation bindings")
			return
		}
		d.target.Qualifier = qualifier
	}
}

// Describe attaches a human-readable description shown by introspection.
func Describe(text string) BindOption {
	return func(d *Declaration) {
		d.description = text
	}
}

func (d *Declaration) fail(reason string) {
	if d.err == nil {
		d.err = apperrors.InvalidBinding(d.key.String(), reason)
	}
}

func (d Declaration) apply(opts []BindOption) Declaration {
	for _, opt := range opts {
		opt(&d)
	}
	if d.eager && d.scope != Singleton {
		d.fail("eager bindings must be singletons")
	}
	if d.kind == KindContext && d.scope != Unscoped {
		d.fail("context bindings cannot be scoped")
	}
	return d
}

// Provide declares a construction rule. fn must be a function returning the
// bound value, optionally followed by an error:
//
//	di.Provide(func(dog *DogImpl) *Dog { return &Dog{} })
//	di.Provide(NewRepository, di.As(di.Singleton))
//
// Each parameter is an unqualified dependency key unless Params overrides it.
// The key is the first return type, qualified with Qualified.
func Provide(fn any, opts ...BindOption) Declaration {
	d := Declaration{kind: KindConstruct}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		d.key = Key{Type: reflect.TypeOf(fn)}
		d.fail("provider must be a non-nil function")
		return d
	}

	t := v.Type()
	if t.NumOut() == 0 {
		d.key = Key{Type: t}
		d.fail("provider must return a value")
		return d
	}
	d.key = Key{Type: t.Out(0)}

	switch {
	case t.NumOut() > 2:
		d.fail("provider must return (T) or (T, error)")
	case t.NumOut() == 2 && t.Out(1) != errorType:
		d.fail("second provider result must be error")
	case t.IsVariadic():
		d.fail("provider must not be variadic")
	}

	d.fn = v
	d.returnsErr = t.NumOut() == 2
	d.deps = make([]Key, t.NumIn())
	for i := range d.deps {
		d.deps[i] = Key{Type: t.In(i)}
	}

	return d.apply(opts)
}

// Bind declares that resolving I yields whatever T resolves to. T must be
// assignable to I:
//
//	di.Bind[Animal, *DogImpl]()
func Bind[I, T any](opts ...BindOption) Declaration {
	d := Declaration{
		kind:   KindDelegate,
		key:    KeyOf[I](),
		target: KeyOf[T](),
	}
	if !d.target.Type.AssignableTo(d.key.Type) {
		d.fail(d.target.Type.String() + " is not assignable to " + d.key.Type.String())
	}
	d = d.apply(opts)
	if d.target == d.key {
		d.fail("binding delegates to itself")
	}
	return d
}

// Context declares a value supplied at runtime through Container.Attach,
// such as the current request or the application object. Resolving it
// before a value is attached fails with MISSING_CONTEXT.
func Context[T any](opts ...BindOption) Declaration {
	d := Declaration{kind: KindContext, key: KeyOf[T]()}
	return d.apply(opts)
}

// Instance declares a pre-built singleton value bound under T.
func Instance[T any](value T, opts ...BindOption) Declaration {
	d := Declaration{
		kind:  KindInstance,
		key:   KeyOf[T](),
		value: value,
		scope: Singleton,
	}
	if v := reflect.ValueOf(any(value)); !v.IsValid() {
		d.fail("instance must not be nil")
	}
	d = d.apply(opts)
	d.scope = Singleton
	return d
}

// Module groups declarations under a name shown by introspection. It returns
// the declarations in order, so modules concatenate:
//
//	decls := slices.Concat(AppModule(), AnimalModule())
func Module(name string, decls ...Declaration) []Declaration {
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		d.module = name
		out[i] = d
	}
	return out
}

// edges returns the keys this declaration needs before it can produce a value.
func (d Declaration) edges() []Key {
	switch d.kind {
	case KindConstruct:
		return d.deps
	case KindDelegate:
		return []Key{d.target}
	default:
		return nil
	}
}
