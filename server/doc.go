// Package server hosts a Gin engine over HTTP/1.1 and h2c and gives every
// request on a scoped route its own child container.
//
//	srv := server.New(cfg.Server, log)
//	srv.ApplyMiddleware(metrics)
//	srv.RegisterDefaultEndpoints(cfg.Name, registry.HealthAll, root)
//	screens := srv.Scoped("/screens", activity, nil)
//	screens.GET("/main", func(c *gin.Context) {
//	    dog, err := di.Resolve[*sample.Dog](server.ContainerFrom(c))
//	    ...
//	})
//
// Built-in middleware (server/middleware): Recovery, RequestID, Metrics,
// RequestLogger and Scope. Built-in endpoints (server/endpoint): /health,
// /info and /bindings.
package server
