//go:build !linux

package platform

import "os"

func userCacheRoot() (string, error) {
	return os.UserCacheDir()
}
