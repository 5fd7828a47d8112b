package platform

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names tried on Linux when xdg-open cannot be launched
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

var (
	ErrEmptyPath           = errors.New("path is empty")
	ErrSpawn               = errors.New("failed to launch file manager")
	ErrNoFileManager       = errors.New("no suitable file manager found")
	ErrUnsupportedPlatform = errors.New("revealing files is not supported on this platform")
)

// Revealer shows a path in the platform file manager.
type Revealer interface {
	Reveal(path string) error
}

// NewRevealer returns the Revealer for the operating system this binary was
// built for.
func NewRevealer(spawner Spawner) Revealer {
	return newOSRevealer(spawner)
}

// ExplorerRevealer selects the path in Windows Explorer.
type ExplorerRevealer struct {
	Spawner Spawner
}

func (r ExplorerRevealer) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	// explorer expects "/select," and the path as separate arguments
	if err := r.Spawner.Start(ExplorerCommand, WindowsSelectParam, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, ExplorerCommand, err)
	}
	return nil
}

// FinderRevealer reveals the path in macOS Finder.
type FinderRevealer struct {
	Spawner Spawner
}

func (r FinderRevealer) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := r.Spawner.Start(OpenCommand, MacOSSelectFlag, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, OpenCommand, err)
	}
	return nil
}

// XDGRevealer opens the directory containing the path. Selecting a single
// file is not standardized across Linux file managers.
type XDGRevealer struct {
	Spawner Spawner
}

func (r XDGRevealer) Reveal(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	dir := filepath.Dir(path)

	xdgErr := r.Spawner.Start(XDGOpenCommand, dir)
	if xdgErr == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := r.Spawner.LookPath(fm); err != nil {
			continue
		}
		if err := r.Spawner.Start(fm, dir); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSpawn, fm, err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s: %w", ErrNoFileManager, XDGOpenCommand, xdgErr)
}

// unsupportedRevealer is used on platforms without a known file manager.
type unsupportedRevealer struct{}

func (unsupportedRevealer) Reveal(string) error {
	return ErrUnsupportedPlatform
}
