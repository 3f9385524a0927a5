// Package di provides a validated, scope-aware dependency injection container.
//
// Bindings are declared up front and checked when the container is built:
// duplicate keys, dependencies that nothing provides and dependency cycles
// are reported before anything is constructed. A key is a type plus an
// optional qualifier.
//
// # Declaration
//
//	root, err := di.New(di.NameSingleton, slices.Concat(
//	    di.Module("person",
//	        di.Provide(NewWoman, di.As(di.Singleton)),
//	        di.Provide(NewPersonImpl),
//	        di.Bind[Person, *PersonImpl](),
//	    ),
//	    di.Module("app",
//	        di.Context[*Application](),
//	    ),
//	), di.WithContextValue(di.KeyOf[*Application](), app))
//
// # Scopes
//
// Singleton bindings produce one instance per owning container; the owner is
// the container that declares the binding, whichever descendant asks for it.
// Unscoped bindings produce a new instance per resolution.
//
// # Child containers
//
//	activity, err := root.Child(di.NameActivity, activityDecls)
//
// A child sees its ancestors' bindings. Context values attached to a child
// are visible to unscoped resolutions that start at the child, but never to
// an ancestor's singletons.
//
// # Resolution
//
//	woman := di.MustResolve[*Woman](activity)
//	cat, err := di.ResolveNamed[*Cat](activity, "special")
package di
