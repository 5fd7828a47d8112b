package platform

import (
	"os/exec"

	"github.com/rs/zerolog"
)

// Spawner launches helper processes without waiting for them to exit.
type Spawner interface {
	// Start launches name with args. It returns once the process is running.
	Start(name string, args ...string) error

	// LookPath reports where an executable is installed.
	LookPath(file string) (string, error)
}

// ExecSpawner implements Spawner with os/exec. Started processes are reaped
// in a background goroutine so the caller never blocks on them.
type ExecSpawner struct {
	logger zerolog.Logger
}

// NewExecSpawner creates a spawner that logs process exits to logger
func NewExecSpawner(logger zerolog.Logger) *ExecSpawner {
	return &ExecSpawner{logger: logger.With().Str("component", "spawner").Logger()}
}

// Start launches the process detached from the caller
func (s *ExecSpawner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	pid := cmd.Process.Pid
	s.logger.Debug().Str("cmd", name).Strs("args", args).Int("pid", pid).Msg("process started")

	go func() {
		// explorer.exe exits 1 even on success, so a non-zero exit is only worth a debug line
		if err := cmd.Wait(); err != nil {
			s.logger.Debug().Err(err).Str("cmd", name).Int("pid", pid).Msg("process exited")
		}
	}()

	return nil
}

// LookPath wraps exec.LookPath
func (s *ExecSpawner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
