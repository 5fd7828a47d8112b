package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

var ErrEmptyAppID = errors.New("application id is empty")

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CacheDir returns the application-scoped cache directory: the user cache
// root for this OS joined with the application id. The directory is not
// created.
func CacheDir(appID string) (string, error) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return "", ErrEmptyAppID
	}

	root, err := userCacheRoot()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache directory: %w", err)
	}

	return filepath.Join(root, appID), nil
}
