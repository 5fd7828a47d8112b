package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ytget/filedesk/internal/model"
)

// DefaultMarker is the name fragment the UI layer gives to disposable files.
const DefaultMarker = "question-"

var ErrEmptyMarker = errors.New("cache marker is empty")

// DirResolver returns the cache directory to clear.
type DirResolver func() (string, error)

// Recorder observes removals. Implemented by metrics.Metrics.
type Recorder interface {
	CacheEntriesRemoved(n int)
}

// Options configure a Cleaner.
type Options struct {
	Marker   string
	Resolve  DirResolver
	Deleter  Deleter
	Logger   zerolog.Logger
	Recorder Recorder
}

// Cleaner removes marker-named entries from the cache directory.
type Cleaner struct {
	marker   string
	resolve  DirResolver
	deleter  Deleter
	logger   zerolog.Logger
	recorder Recorder

	group singleflight.Group
}

// NewCleaner creates a cleaner. A nil Deleter means OSDeleter.
func NewCleaner(opts Options) (*Cleaner, error) {
	if opts.Marker == "" {
		return nil, ErrEmptyMarker
	}
	if opts.Resolve == nil {
		return nil, errors.New("cache directory resolver is nil")
	}
	if opts.Deleter == nil {
		opts.Deleter = OSDeleter{}
	}

	return &Cleaner{
		marker:   opts.Marker,
		resolve:  opts.Resolve,
		deleter:  opts.Deleter,
		logger:   opts.Logger.With().Str("component", "cache").Logger(),
		recorder: opts.Recorder,
	}, nil
}

// StaticDir returns a resolver for a fixed directory.
func StaticDir(dir string) DirResolver {
	return func() (string, error) {
		return dir, nil
	}
}

// Marker returns the configured name fragment
func (c *Cleaner) Marker() string {
	return c.marker
}

// Clear deletes every direct entry of the cache directory whose name contains
// the marker. The first enumeration or removal error aborts the run and
// entries after it are left untouched. A marker-named directory therefore
// fails the whole clear with ErrNotRegularFile.
//
// Concurrent calls share a single run and receive the same result. The run
// uses the context of the caller that started it, so cancelling that caller
// also fails the callers that joined. A caller whose own context ends first
// returns ctx.Err() without waiting for the shared run.
func (c *Cleaner) Clear(ctx context.Context) (*model.ClearReport, error) {
	ch := c.group.DoChan("clear", func() (any, error) {
		return c.clear(ctx)
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.logger.Debug().Msg("joined in-flight cache clear")
		}
		report, _ := res.Val.(*model.ClearReport)
		return report, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cleaner) clear(ctx context.Context) (*model.ClearReport, error) {
	dir, err := c.resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
	}

	report := &model.ClearReport{Dir: dir, Marker: c.marker}
	defer func() {
		if c.recorder != nil && len(report.Removed) > 0 {
			c.recorder.CacheEntriesRemoved(len(report.Removed))
		}
	}()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf("failed to read cache directory %s: %w", dir, err)
	}
	report.Scanned = len(entries)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := entry.Name()
		if !strings.Contains(name, c.marker) {
			continue
		}

		if err := c.deleter.RemoveFile(filepath.Join(dir, name)); err != nil {
			c.logger.Warn().Err(err).Str("entry", name).Int("removed", len(report.Removed)).Msg("cache clear aborted")
			return report, fmt.Errorf("failed to remove cache entry %s: %w", name, err)
		}
		report.Removed = append(report.Removed, name)
	}

	c.logger.Info().Str("dir", dir).Int("scanned", report.Scanned).Int("removed", len(report.Removed)).Msg("cache cleared")
	return report, nil
}
