package di

// Scope is the lifetime policy of a produced instance.
type Scope int

const (
	Unscoped  Scope = iota // New instance per resolution, owned by the caller
	Singleton              // One instance per owning container, cached
)

// String returns the lowercase scope name used in logs and introspection.
func (s Scope) String() string {
	switch s {
	case Unscoped:
		return "unscoped"
	case Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}

// Kind is the production rule of a binding.
type Kind int

const (
	KindConstruct Kind = iota // call a provider function
	KindDelegate              // resolve another key
	KindContext               // read a value attached at runtime
	KindInstance              // return a pre-built value
)

// String returns the kind name used in introspection.
func (k Kind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindDelegate:
		return "delegate"
	case KindContext:
		return "context"
	case KindInstance:
		return "instance"
	default:
		return "unknown"
	}
}
