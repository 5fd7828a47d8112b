package platform

import (
	"errors"
	"strings"
)

// fakeSpawner records spawn calls instead of launching processes
type fakeSpawner struct {
	calls     []string
	failStart map[string]error
	installed map[string]bool
}

func (f *fakeSpawner) Start(name string, args ...string) error {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if err, ok := f.failStart[name]; ok {
		return err
	}
	return nil
}

func (f *fakeSpawner) LookPath(file string) (string, error) {
	if f.installed[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}
