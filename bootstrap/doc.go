// Package bootstrap runs a scopekit host: it validates the typed config,
// initializes logging, builds the root container from the application's
// declarations and drives every registered component through start, ready
// and graceful shutdown.
//
//	app, err := bootstrap.NewApp(&cfg, sample.AppModule())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app.OnConfigure(func(ctx context.Context, a *bootstrap.App[*DemoConfig]) error {
//	    activity, err := a.Scope(di.NameActivity, sample.ActivityModule())
//	    ...
//	})
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The root container is registered first as a component, so it is warmed
// before any other component starts and closed after all of them stop.
package bootstrap
