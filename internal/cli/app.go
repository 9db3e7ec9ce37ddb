package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/workboard/internal/config"
	"github.com/alexanderramin/workboard/internal/fixture"
	"github.com/alexanderramin/workboard/internal/layout"
	"github.com/alexanderramin/workboard/internal/service"
	"github.com/alexanderramin/workboard/internal/store"
)

// App holds the configuration and services shared by CLI commands. Board is
// built by Open after flags are parsed unless a caller injects one.
type App struct {
	Config config.Config
	Output string
	Stderr io.Writer

	Board   service.BoardService
	Metrics *service.MetricsObserver
}

// Open loads the seed and wires the store, layout cache and board service.
func (a *App) Open(ctx context.Context) error {
	seed, err := fixture.Load(ctx, a.Config.SeedPath)
	if err != nil {
		return fmt.Errorf("loading seed: %w", err)
	}

	opts := []store.Option{
		store.WithWorkCenters(seed.WorkCenters...),
		store.WithSeed(seed.WorkOrders...),
	}
	if a.Config.Strict {
		opts = append(opts, store.WithGuard(store.NoOverlap{}))
	}
	st := store.New(opts...)

	var observers []service.UseCaseObserver
	if a.Config.Log {
		observers = append(observers, service.NewLogUseCaseObserver(a.Stderr))
	}
	var cacheObserver layout.CacheObserver
	if a.Config.MetricsFile != "" {
		a.Metrics = service.NewMetricsObserver()
		observers = append(observers, a.Metrics)
		cacheObserver = a.Metrics.ObserveLayout
	}

	a.Board = service.NewBoardService(st, layout.NewCache(st, cacheObserver), service.NewMultiObserver(observers...))
	return nil
}

// Close flushes metrics to the configured textfile.
func (a *App) Close() error {
	if a.Metrics == nil || a.Config.MetricsFile == "" {
		return nil
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
