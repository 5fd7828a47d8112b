package capability

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPlugin struct{}

func (failingPlugin) Name() string        { return "broken" }
func (failingPlugin) Init(fyne.App) error { return errors.New("no permission") }

func TestHost_RegisterInOrder(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	host := NewHost(app, zerolog.Nop())

	require.NoError(t, host.Register(NewFilesystemPlugin()))
	require.NoError(t, host.Register(NewDialogPlugin(nil)))

	assert.Equal(t, []string{FilesystemPluginName, DialogPluginName}, host.Names())
}

func TestHost_RejectsDuplicatesAndFailures(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	host := NewHost(app, zerolog.Nop())

	require.NoError(t, host.Register(NewFilesystemPlugin()))
	assert.ErrorIs(t, host.Register(NewFilesystemPlugin()), ErrDuplicatePlugin)
	assert.ErrorIs(t, host.Register(nil), ErrNilPlugin)
	assert.ErrorContains(t, host.Register(failingPlugin{}), "no permission")

	assert.Equal(t, []string{FilesystemPluginName}, host.Names())
}

func TestLookup(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	host := NewHost(app, zerolog.Nop())
	fs := NewFilesystemPlugin()
	require.NoError(t, host.Register(fs))

	got, ok := Lookup[*FilesystemPlugin](host)
	assert.True(t, ok)
	assert.Same(t, fs, got)

	_, ok = Lookup[*DialogPlugin](host)
	assert.False(t, ok)
}

func TestFilesystemPlugin_ExistsAndList(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	fs := NewFilesystemPlugin()
	require.NoError(t, fs.Init(app))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "question-1.tmp"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	exists, err := fs.Exists(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, exists)

	names, err := fs.List(dir)
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"notes.txt", "question-1.tmp"}, names)
}

func TestDialogPlugin_RequiresWindow(t *testing.T) {
	p := NewDialogPlugin(nil)

	assert.ErrorIs(t, p.ShowError(errors.New("x")), ErrNoWindow)
	assert.ErrorIs(t, p.Confirm("t", "m", func(bool) {}), ErrNoWindow)
	assert.ErrorIs(t, p.PickFile(func(string) {}), ErrNoWindow)
}

func TestDialogPlugin_ShowsOverlay(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()
	w.Resize(fyne.NewSize(400, 300))

	p := NewDialogPlugin(w)
	require.NoError(t, p.Init(app))
	require.NoError(t, p.ShowInformation("Cache", "Removed 2 cache files"))

	assert.NotNil(t, w.Canvas().Overlays().Top())
}
