package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scopekit/di"
	apperrors "github.com/kbukum/scopekit/errors"
	"github.com/kbukum/scopekit/logger"
)

// KeyContainer is the gin context key holding the request container.
const KeyContainer = "scopekit.container"

// QualifierRequestID qualifies the request id string bound in every
// request container.
const QualifierRequestID = "request_id"

// RequestDecls are the context bindings every request container declares:
// the *http.Request and the request id.
func RequestDecls() []di.Declaration {
	return di.Module("request",
		di.Context[*http.Request](),
		di.Context[string](di.Qualified(QualifierRequestID)),
	)
}

// Scope creates a child of parent for every request, named name and
// declaring decls plus RequestDecls. The request and its id are attached,
// the container is stored under KeyContainer and closed after the handler
// chain returns.
func Scope(parent *di.Container, name string, decls []di.Declaration, log *logger.Logger) gin.HandlerFunc {
	all := slices.Concat(RequestDecls(), decls)
	return func(c *gin.Context) {
		child, err := parent.Child(name, all,
			di.WithContextValue(di.KeyOf[*http.Request](), c.Request),
			di.WithContextValue(di.Named[string](QualifierRequestID), GetRequestID(c)),
		)
		if err != nil {
			log.Error("request container failed", logger.ErrorFields("scope", err))
			appErr, ok := apperrors.AsAppError(err)
			if !ok {
				appErr = apperrors.Internal(err)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		c.Set(KeyContainer, child)
		defer func() {
			if err := child.Close(); err != nil {
				log.Warn("request container close failed", logger.Fields(
					logger.FieldContainerID, child.ID(),
					logger.FieldError, err.Error(),
				))
			}
		}()
		c.Next()
	}
}

// Container returns the request container set by Scope, or nil.
func Container(c *gin.Context) *di.Container {
	v, ok := c.Get(KeyContainer)
	if !ok {
		return nil
	}
	child, _ := v.(*di.Container)
	return child
}
