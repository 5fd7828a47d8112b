package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/filedesk/internal/config"
	"github.com/ytget/filedesk/internal/platform"
)

type recordingSpawner struct {
	calls []string
}

func (s *recordingSpawner) Start(name string, args ...string) error {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	return nil
}

func (s *recordingSpawner) LookPath(file string) (string, error) {
	return "/usr/bin/" + file, nil
}

func testOptions(t *testing.T, a fyne.App, sp platform.Spawner) *options {
	t.Helper()
	return &options{
		version:    "test",
		logOutput:  &bytes.Buffer{},
		newApp:     func() fyne.App { return a },
		newSpawner: func(zerolog.Logger) platform.Spawner { return sp },
	}
}

func run(t *testing.T, o *options, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(o)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClearCacheCmd_UsesDirFlag(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	dir := t.TempDir()
	for _, name := range []string{"question-1.tmp", "question-2.tmp", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	out, err := run(t, testOptions(t, a, &recordingSpawner{}), "clear-cache", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Removed 2 cache files")
	assert.Contains(t, out, "question-1.tmp")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "question-1.tmp"))
}

func TestClearCacheCmd_UsesSavedSettings(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft-1.tmp"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "question-1.tmp"), nil, 0o644))

	settings := config.NewSettings(a)
	settings.SetCacheDirectory(dir)
	settings.SetCacheMarker("draft-")

	_, err := run(t, testOptions(t, a, &recordingSpawner{}), "clear-cache")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "draft-1.tmp"))
	assert.FileExists(t, filepath.Join(dir, "question-1.tmp"))
}

func TestClearCacheCmd_MissingDirFails(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	_, err := run(t, testOptions(t, a, &recordingSpawner{}), "clear-cache", "--dir", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read cache directory")
}

func TestRevealCmd_SpawnsOnce(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	sp := &recordingSpawner{}

	_, err := run(t, testOptions(t, a, sp), "reveal", "/home/me/docs/report.pdf")
	require.NoError(t, err)
	assert.Len(t, sp.calls, 1)
}

func TestClearCacheCmd_PrintsStats(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	dir := t.TempDir()
	for _, name := range []string{"question-1.tmp", "question-2.tmp", "question-3.tmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	out, err := run(t, testOptions(t, a, &recordingSpawner{}), "clear-cache", "--dir", dir, "--stats")
	require.NoError(t, err)

	assert.Contains(t, out, "Removed 3 cache files")
	assert.Contains(t, out, `filedesk_commands_total{command="clear_cache",outcome="success"} 1`)
	assert.Contains(t, out, "filedesk_cache_entries_removed_total 3")
}

func TestRevealCmd_StatsOffByDefault(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	out, err := run(t, testOptions(t, a, &recordingSpawner{}), "reveal", "/home/me/docs/report.pdf")
	require.NoError(t, err)
	assert.NotContains(t, out, "filedesk_commands_total")
}

func TestRevealCmd_FailurePrintsStats(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	out, err := run(t, testOptions(t, a, &recordingSpawner{}), "reveal", "", "--stats")
	require.Error(t, err)
	assert.Contains(t, out, `filedesk_commands_total{command="show_in_folder",outcome="failure"} 1`)
}

func TestRevealCmd_RequiresPath(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	_, err := run(t, testOptions(t, a, &recordingSpawner{}), "reveal")
	assert.Error(t, err)
}

func TestNewBackend_RegistersCommands(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	b, err := newBackend(a, testOptions(t, a, &recordingSpawner{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"clear_cache", "show_in_folder"}, b.registry.Names())
}

func TestRegisterPlugins(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	host, err := registerPlugins(a, w, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"fs", "dialog"}, host.Names())
}
