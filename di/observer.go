package di

import "time"

// Observer receives container events. Implementations must be safe for
// concurrent use; callbacks run on the resolving goroutine.
type Observer interface {
	// OnResolve is called once per top-level Resolve call.
	OnResolve(container string, key Key, err error)
	// OnConstruct is called each time a provider function runs.
	OnConstruct(container string, key Key, scope Scope, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) OnResolve(string, Key, error) {}
func (nopObserver) OnConstruct(string, Key, Scope, time.Duration, error) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Resolve   func(container string, key Key, err error)
	Construct func(container string, key Key, scope Scope, elapsed time.Duration, err error)
}

func (f ObserverFuncs) OnResolve(container string, key Key, err error) {
	if f.Resolve != nil {
		f.Resolve(container, key, err)
	}
}

func (f ObserverFuncs) OnConstruct(container string, key Key, scope Scope, elapsed time.Duration, err error) {
	if f.Construct != nil {
		f.Construct(container, key, scope, elapsed, err)
	}
}
