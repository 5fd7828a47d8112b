package cache

import (
	"errors"
	"fmt"
	"os"
)

var ErrNotRegularFile = errors.New("not a regular file")

// Deleter abstracts file removal so tests can observe deletions.
type Deleter interface {
	RemoveFile(path string) error
}

// OSDeleter removes files with the os package. It refuses anything that is
// not a regular file or symlink, including empty directories that os.Remove
// would otherwise accept.
type OSDeleter struct{}

func (OSDeleter) RemoveFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("remove %s: %w: is a directory", path, ErrNotRegularFile)
	}
	return os.Remove(path)
}

// FakeDeleter records removals without touching the filesystem.
type FakeDeleter struct {
	Calls []string
	Fail  map[string]error
}

func (f *FakeDeleter) RemoveFile(path string) error {
	f.Calls = append(f.Calls, path)
	if err, ok := f.Fail[path]; ok {
		return err
	}
	return nil
}
