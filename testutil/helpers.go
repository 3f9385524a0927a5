package testutil

import (
	"context"
	"testing"

	"github.com/kbukum/scopekit/component"
	"github.com/kbukum/scopekit/di"
	"github.com/kbukum/scopekit/logger"
)

// Container builds a root container with a silent logger and closes it when
// the test ends. Build errors fail the test.
func Container(t testing.TB, name string, decls []di.Declaration, opts ...di.Option) *di.Container {
	t.Helper()
	opts = append([]di.Option{di.WithLogger(logger.Nop())}, opts...)
	c, err := di.New(name, decls, opts...)
	if err != nil {
		t.Fatalf("testutil: build %s: %v", name, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// Child builds a child of parent and closes it when the test ends, before
// the parent.
func Child(t testing.TB, parent *di.Container, name string, decls []di.Declaration, opts ...di.Option) *di.Container {
	t.Helper()
	c, err := parent.Child(name, decls, opts...)
	if err != nil {
		t.Fatalf("testutil: build %s below %s: %v", name, parent.Name(), err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// Start starts c and stops it when the test ends.
func Start(t testing.TB, c component.Component) {
	t.Helper()
	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("testutil: start %s: %v", c.Name(), err)
	}
	t.Cleanup(func() {
		if err := c.Stop(ctx); err != nil {
			t.Errorf("testutil: stop %s: %v", c.Name(), err)
		}
	})
}
