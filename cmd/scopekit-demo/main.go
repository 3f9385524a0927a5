// Command scopekit-demo serves the sample graph over HTTP. Every request to
// /screens runs in its own activity container below the root container.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/scopekit/bootstrap"
	"github.com/kbukum/scopekit/config"
	"github.com/kbukum/scopekit/di"
	"github.com/kbukum/scopekit/observability"
	"github.com/kbukum/scopekit/sample"
	"github.com/kbukum/scopekit/sample/screen"
	"github.com/kbukum/scopekit/server"
	"github.com/kbukum/scopekit/version"
)

const serviceName = "scopekit-demo"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg DemoConfig
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		return err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}

	observer, err := observability.NewContainerObserver(observability.Meter(), observability.Tracer())
	if err != nil {
		return err
	}

	application := sample.NewApplication(serviceName)
	app, err := bootstrap.NewApp(&cfg, sample.RootModules(),
		bootstrap.WithObserver(observer),
		bootstrap.WithContainerOptions(
			di.WithContextValue(di.Named[sample.Context](di.QualifierApplication), application),
		),
	)
	if err != nil {
		return err
	}

	telemetry := observability.NewComponent(observability.Resource{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
	}, cfg.Telemetry)
	if err := app.RegisterComponent(telemetry); err != nil {
		return err
	}

	metrics, err := observability.NewRequestMetrics(observability.Meter())
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, app.Logger)
	srv.ApplyMiddleware(metrics)
	srv.RegisterDefaultEndpoints(cfg.Name, app.Components.HealthAll, app.Root)
	screen.New(app.Logger).Register(srv.Scoped("/screens", app.Root, sample.ActivityModules()))

	if err := app.RegisterComponent(server.NewComponent(srv)); err != nil {
		return err
	}

	app.OnReady(func(context.Context) error {
		dog, err := sample.DogEntryPoint(app.Root)
		if err != nil {
			return err
		}
		residents, err := sample.ResidentsEntryPoint(app.Root)
		if err != nil {
			return err
		}
		app.Logger.Info("application entry point ready", map[string]interface{}{
			"dog":    dog.String(),
			"man":    residents.Man.String(),
			"woman":  residents.Woman.String(),
			"person": residents.Person.Kind(),
		})
		return nil
	})

	return app.Run(ctx)
}
