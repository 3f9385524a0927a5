package component

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/kbukum/scopekit/di"
)

// ContainerComponent runs a dependency container as a lifecycle component:
// Start warms its eager singletons, Stop closes it.
type ContainerComponent struct {
	container *di.Container
	warm      bool
	stopped   atomic.Bool
}

// ForContainer wraps c. When warm is false, Start leaves every singleton to
// be built on first use.
func ForContainer(c *di.Container, warm bool) *ContainerComponent {
	return &ContainerComponent{container: c, warm: warm}
}

// Name returns "container:<name>".
func (cc *ContainerComponent) Name() string {
	return "container:" + cc.container.Name()
}

// Container returns the wrapped container.
func (cc *ContainerComponent) Container() *di.Container {
	return cc.container
}

// Start builds the eager singletons when warming is enabled.
func (cc *ContainerComponent) Start(ctx context.Context) error {
	if !cc.warm {
		return nil
	}
	if err := cc.container.Warm(ctx); err != nil {
		return fmt.Errorf("warm %s: %w", cc.container.Name(), err)
	}
	return nil
}

// Stop closes the container and the singletons it built.
func (cc *ContainerComponent) Stop(_ context.Context) error {
	cc.stopped.Store(true)
	return cc.container.Close()
}

// Health reports unhealthy once the container is closed.
func (cc *ContainerComponent) Health(_ context.Context) Health {
	h := Health{Name: cc.Name(), Status: StatusHealthy}
	if cc.stopped.Load() {
		h.Status = StatusUnhealthy
		h.Message = "container closed"
	}
	return h
}

// Describe reports binding counts for the startup summary.
func (cc *ContainerComponent) Describe() Description {
	bindings := cc.container.Bindings()
	eager := 0
	for _, b := range bindings {
		if b.Eager {
			eager++
		}
	}
	return Description{
		Name:    "Container " + cc.container.Name(),
		Type:    "container",
		Details: fmt.Sprintf("bindings=%d eager=%d id=%s", len(bindings), eager, cc.container.ID()),
	}
}
