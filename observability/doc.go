// Package observability wires OpenTelemetry tracing and metrics.
//
// Component installs OTLP/HTTP tracer and meter providers for the life of
// the host. ContainerObserver plugs into a di.Container and records
// resolutions and provider calls:
//
//	obs, err := observability.NewContainerObserver(observability.Meter(), observability.Tracer())
//	root, err := di.New(di.NameSingleton, decls, di.WithObserver(obs))
package observability
