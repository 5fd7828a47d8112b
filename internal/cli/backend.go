package cli

import (
	"context"
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/filedesk/internal/cache"
	"github.com/ytget/filedesk/internal/command"
	"github.com/ytget/filedesk/internal/config"
	"github.com/ytget/filedesk/internal/logging"
	"github.com/ytget/filedesk/internal/metrics"
	"github.com/ytget/filedesk/internal/model"
	"github.com/ytget/filedesk/internal/platform"
)

// backend wires settings, logging, metrics and the command registry
type backend struct {
	settings *config.Settings
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	registry *command.Registry
	clearer  *switchableClearer
}

// switchableClearer lets settings changes replace the cleaner without
// re-registering the clear_cache handler
type switchableClearer struct {
	current atomic.Pointer[cache.Cleaner]
}

func (s *switchableClearer) Clear(ctx context.Context) (*model.ClearReport, error) {
	return s.current.Load().Clear(ctx)
}

func newBackend(a fyne.App, o *options) (*backend, error) {
	settings := config.NewSettings(a)

	level := o.logLevel
	if level == "" {
		level = settings.GetLogLevel()
	}
	logger := logging.NewWithWriter(o.logOutput, level)

	b := &backend{
		settings: settings,
		logger:   logger,
		metrics:  metrics.New(),
		clearer:  &switchableClearer{},
	}
	if err := b.reload(); err != nil {
		return nil, err
	}

	b.registry = command.NewRegistry(logger, b.metrics)
	revealer := platform.NewRevealer(o.newSpawner(logger))
	if err := command.RegisterDefaults(b.registry, revealer, b.clearer); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return b, nil
}

// reload rebuilds the cleaner from the current settings
func (b *backend) reload() error {
	cleaner, err := cache.NewCleaner(cache.Options{
		Marker:   b.settings.GetCacheMarker(),
		Resolve:  b.settings.GetCacheDirectory,
		Logger:   b.logger,
		Recorder: b.metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to configure cache cleaner: %w", err)
	}
	b.clearer.current.Store(cleaner)
	return nil
}

// override replaces the cleaner with one using marker and, when set, dir
func (b *backend) override(marker, dir string) error {
	resolve := b.settings.GetCacheDirectory
	if dir != "" {
		resolve = cache.StaticDir(dir)
	}

	cleaner, err := cache.NewCleaner(cache.Options{
		Marker:   marker,
		Resolve:  resolve,
		Logger:   b.logger,
		Recorder: b.metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to configure cache cleaner: %w", err)
	}
	b.clearer.current.Store(cleaner)
	return nil
}
