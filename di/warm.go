package di

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/scopekit/dag"
	"github.com/kbukum/scopekit/logger"
)

// Warm builds every eager singleton declared in this container. Bindings
// are grouped into dependency levels; each level is built concurrently and
// must finish before the next one starts. Warm stops at the first failure
// or when ctx is done.
func (c *Container) Warm(ctx context.Context) error {
	levels, err := c.levels()
	if err != nil {
		return err
	}

	start := time.Now()
	warmed := 0
	for _, level := range levels {
		if err := ctx.Err(); err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, key := range level {
			b := c.bindings[key]
			if !b.decl.eager {
				continue
			}
			warmed++
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				_, err := c.resolve(key, c, nil)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			c.log.Error("warm-up failed", logger.ErrorFields("warm", err))
			return err
		}
	}

	c.log.Info("container warmed", map[string]interface{}{
		"eager":              warmed,
		"levels":             len(levels),
		logger.FieldDuration: time.Since(start).Milliseconds(),
	})
	return nil
}

// levels groups the local bindings so that every binding comes after the
// local bindings it depends on.
func (c *Container) levels() ([][]Key, error) {
	g := &dag.Graph[Key]{Nodes: c.order}
	for _, k := range c.order {
		for _, dep := range c.bindings[k].decl.edges() {
			if _, ok := c.bindings[dep]; ok {
				g.Edges = append(g.Edges, dag.Edge[Key]{From: dep, To: k})
			}
		}
	}
	return dag.BuildLevels(g)
}
