package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scopekit/di"
)

// Bindings returns a handler that lists the bindings visible from c, one
// entry per key, nearest owner first.
func Bindings(c *di.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		chain := []string{}
		for x := c; x != nil; x = x.Parent() {
			chain = append(chain, x.Name())
		}
		ctx.JSON(http.StatusOK, gin.H{
			"container": c.Name(),
			"id":        c.ID(),
			"chain":     chain,
			"bindings":  c.Bindings(),
		})
	}
}
