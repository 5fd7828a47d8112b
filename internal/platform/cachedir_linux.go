//go:build linux

package platform

import (
	"errors"

	"go4.org/xdgdir"
)

// userCacheRoot honours $XDG_CACHE_HOME and falls back to ~/.cache.
func userCacheRoot() (string, error) {
	dir := xdgdir.Cache.Path()
	if dir == "" {
		return "", errors.New("neither $XDG_CACHE_HOME nor $HOME is set")
	}
	return dir, nil
}
