package di

import "fmt"

// Resolve resolves the unqualified key for T with type safety.
// Use this when you want to handle resolution errors gracefully.
//
// Example:
//
//	repo, err := di.Resolve[*Repository](c)
//	if err != nil {
//	    return fmt.Errorf("failed to get repository: %w", err)
//	}
func Resolve[T any](c *Container) (T, error) {
	return ResolveNamed[T](c, "")
}

// ResolveNamed resolves T under qualifier.
func ResolveNamed[T any](c *Container, qualifier string) (T, error) {
	var zero T
	key := Named[T](qualifier)
	instance, err := c.Resolve(key)
	if err != nil {
		return zero, fmt.Errorf("di: failed to resolve %s: %w", key, err)
	}
	if instance == nil {
		return zero, nil
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: binding %s is %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// MustResolve resolves T, panics on error.
// Use this in entry points when a missing dependency is a programming error.
//
// Example:
//
//	dog := di.MustResolve[*sample.Dog](app.Container())
func MustResolve[T any](c *Container) T {
	return MustResolveNamed[T](c, "")
}

// MustResolveNamed resolves T under qualifier, panics on error.
func MustResolveNamed[T any](c *Container, qualifier string) T {
	result, err := ResolveNamed[T](c, qualifier)
	if err != nil {
		panic(err.Error())
	}
	return result
}

// TryResolve resolves T, returns zero value and false on any failure.
// Use this when a dependency is optional.
//
// Example:
//
//	if obs, ok := di.TryResolve[Observer](c); ok {
//	    obs.OnResolve(...)
//	}
func TryResolve[T any](c *Container) (T, bool) {
	result, err := Resolve[T](c)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

// Provider returns a function that resolves T from c on every call, so a
// consumer can defer or repeat resolution:
//
//	newFish := di.Provider[*Fish](viewModel)
//	a, _ := newFish()
//	b, _ := newFish() // distinct when Fish is unscoped
func Provider[T any](c *Container) func() (T, error) {
	return func() (T, error) {
		return Resolve[T](c)
	}
}

// Attach attaches value to the unqualified context binding for T.
func Attach[T any](c *Container, value T) error {
	return c.Attach(KeyOf[T](), value)
}

// AttachNamed attaches value to the context binding for T under qualifier.
func AttachNamed[T any](c *Container, qualifier string, value T) error {
	return c.Attach(Named[T](qualifier), value)
}
