package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kbukum/scopekit/component"
	"github.com/kbukum/scopekit/di"
	"github.com/kbukum/scopekit/logger"
	"github.com/kbukum/scopekit/validation"
)

// App represents a scopekit host with uniform lifecycle management.
// The type parameter C is the config type, which must satisfy the Config interface.
// Any struct embedding config.ServiceConfig automatically satisfies Config.
type App[C Config] struct {
	Name       string
	Version    string
	Cfg        C
	Root       *di.Container
	Components *component.Registry
	Logger     *logger.Logger
	Summary    *Summary

	gracefulTimeout time.Duration
	onConfigure     []func(ctx context.Context, app *App[C]) error

	onStart []Hook
	onReady []Hook
	onStop  []Hook

	mu     sync.Mutex
	scopes []*di.Container
}

// NewApp applies defaults, validates the config, initializes the logger and
// builds the root container from decls. The root container is registered as
// the first component.
func NewApp[C Config](cfg C, decls []di.Declaration, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetServiceConfig()
	o := resolveOptions(opts)

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		Components:      component.NewRegistry(),
		gracefulTimeout: 15 * time.Second,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&base.Logging)
		app.Logger = logger.GetGlobalLogger()
	}

	containerOpts := []di.Option{di.WithLogger(app.Logger.WithComponent("di"))}
	if o.observer != nil {
		containerOpts = append(containerOpts, di.WithObserver(o.observer))
	}
	containerOpts = append(containerOpts, o.containerOpts...)

	root, err := di.New(base.Container.Name, decls, containerOpts...)
	if err != nil {
		return nil, fmt.Errorf("root container: %w", err)
	}
	app.Root = root

	if err := app.Components.Register(component.ForContainer(root, base.Container.Warm)); err != nil {
		return nil, err
	}

	out := o.summaryOut
	if out == nil {
		out = os.Stdout
	}
	app.Summary = NewSummary(base.Name, base.Version, out)
	return app, nil
}

// RegisterComponent adds a component to the application's registry.
func (a *App[C]) RegisterComponent(c component.Component) error {
	return a.Components.Register(c)
}

// Scope builds a child of the root container that lives until the app
// shuts down. Scopes are closed in reverse creation order before any
// component stops.
func (a *App[C]) Scope(name string, decls []di.Declaration, opts ...di.Option) (*di.Container, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	taken := []string{a.Root.Name()}
	for _, s := range a.scopes {
		taken = append(taken, s.Name())
	}
	err := validation.New().
		Required("scope", name).
		ScopeName("scope", name).
		Unique("scope", name, taken).
		Err()
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	child, err := a.Root.Child(name, decls, opts...)
	if err != nil {
		return nil, err
	}
	a.scopes = append(a.scopes, child)
	return child, nil
}

// OnConfigure registers a callback to run after components have started.
// Use it to build scopes and register routes.
func (a *App[C]) OnConfigure(fn func(ctx context.Context, app *App[C]) error) {
	a.onConfigure = append(a.onConfigure, fn)
}

// ReadyCheck verifies that all registered components are healthy.
func (a *App[C]) ReadyCheck(ctx context.Context) error {
	results := a.Components.HealthAll(ctx)
	var unhealthy []string
	for _, h := range results {
		if h.Status != component.StatusHealthy {
			detail := h.Name + "=" + string(h.Status)
			if h.Message != "" {
				detail += "(" + h.Message + ")"
			}
			unhealthy = append(unhealthy, detail)
		}
	}
	if len(unhealthy) > 0 {
		return fmt.Errorf("unhealthy components: %v", unhealthy)
	}
	return nil
}

// Run executes the full lifecycle for long-running hosts: start components,
// OnStart hooks, configure, ready check, OnReady hooks, block on signal,
// then graceful shutdown.
func (a *App[C]) Run(ctx context.Context) error {
	if err := a.startup(ctx); err != nil {
		return errors.Join(err, a.stop())
	}

	a.Logger.Info("Application ready, waiting for shutdown signal")
	a.WaitForSignal(ctx)

	return a.stop()
}

// RunTask executes a finite task with the full bootstrap lifecycle and shuts
// down when the task returns or the process is signaled.
//
//	app.RunTask(ctx, func(ctx context.Context) error {
//	    return printScreens(ctx, app.Root)
//	})
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		return errors.Join(err, a.stop())
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

func (a *App[C]) startup(ctx context.Context) error {
	start := time.Now()

	a.Logger.Info("Starting application", logger.Fields(
		"name", a.Name,
		"version", a.Version,
	))

	a.Logger.Info("Phase 1: Starting components")
	if err := a.Components.StartAll(ctx); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	a.Logger.Info("Phase 1: All components started")

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	if err := a.configure(ctx); err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	if err := a.ReadyCheck(ctx); err != nil {
		a.Logger.Warn("Ready check reported issues", logger.ErrorFields("ready_check", err))
	}

	if err := runHooks(ctx, a.onReady); err != nil {
		return fmt.Errorf("onReady hook failed: %w", err)
	}

	a.Summary.SetStartupDuration(time.Since(start))
	a.DisplaySummary(ctx)
	return nil
}

func (a *App[C]) configure(ctx context.Context) error {
	if len(a.onConfigure) == 0 {
		return nil
	}

	a.Logger.Info("Phase 2: Running configuration callbacks", logger.Fields("count", len(a.onConfigure)))
	for _, fn := range a.onConfigure {
		if err := fn(ctx, a); err != nil {
			return err
		}
	}
	a.Logger.Info("Phase 2: Configuration complete")
	return nil
}

// DisplaySummary prints the startup summary from the component registry and
// the live containers.
func (a *App[C]) DisplaySummary(ctx context.Context) {
	a.mu.Lock()
	containers := append([]*di.Container{a.Root}, a.scopes...)
	a.mu.Unlock()
	a.Summary.Display(ctx, a.Components, containers)
}

// WaitForSignal blocks until an OS interrupt/term signal or context cancellation.
func (a *App[C]) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.Logger.Info("Received shutdown signal, graceful shutdown starting", logger.Fields("signal", sig.String()))
		return sig
	case <-ctx.Done():
		a.Logger.Info("Context canceled, shutting down")
		return nil
	}
}

// Shutdown performs graceful shutdown. Use when managing your own lifecycle.
func (a *App[C]) Shutdown(_ context.Context) error {
	return a.stop()
}

// stop runs OnStop hooks, closes scopes newest first and stops components
// in reverse registration order, all within the graceful timeout.
func (a *App[C]) stop() error {
	a.Logger.Info("Shutting down application", logger.Fields("timeout", a.gracefulTimeout.String()))

	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var errs []error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", logger.ErrorFields("on_stop", err))
		errs = append(errs, err)
	}

	a.mu.Lock()
	scopes := a.scopes
	a.scopes = nil
	a.mu.Unlock()
	for i := len(scopes) - 1; i >= 0; i-- {
		if err := scopes[i].Close(); err != nil {
			a.Logger.Error("Scope close error", logger.Fields(
				logger.FieldContainer, scopes[i].Name(),
				logger.FieldError, err.Error(),
			))
			errs = append(errs, err)
		}
	}

	if err := a.Components.StopAll(ctx); err != nil {
		a.Logger.Error("Shutdown completed with errors", logger.ErrorFields("stop_all", err))
		errs = append(errs, err)
	}

	a.Logger.Info("Application shutdown complete")
	return errors.Join(errs...)
}
