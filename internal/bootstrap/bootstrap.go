// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultGracePeriod = 5 * time.Second

// App runs a function and releases the registered resources when it ends.
type App struct {
	mu          sync.Mutex
	hooks       []func(ctx context.Context) error
	gracePeriod time.Duration
}

type Option func(*App)

// WithGracePeriod sets how long Run waits for the run function after a signal.
func WithGracePeriod(d time.Duration) Option {
	return func(a *App) {
		a.gracePeriod = d
	}
}

func New(opts ...Option) *App {
	a := &App{
		gracePeriod: defaultGracePeriod,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddShutdownHook registers a function to call once Run finishes.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run with a context canceled on SIGINT or SIGTERM.
// Shutdown hooks run after run returns, or after the grace period once a signal arrived.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		slog.Info("shutting down", "cause", ctx.Err())
		select {
		case runErr = <-errCh:
		case <-time.After(a.gracePeriod):
			runErr = fmt.Errorf("run did not return within %s", a.gracePeriod)
		}
	}

	return errors.Join(runErr, a.shutdown(context.Background()))
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
