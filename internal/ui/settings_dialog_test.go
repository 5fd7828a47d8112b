package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/filedesk/internal/config"
)

func TestSettingsDialog_SaveAppliesValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, w, NewLocalization(), nil)
	saved := false
	sd.SetOnSaved(func() { saved = true })
	sd.loadCurrentSettings()

	custom := t.TempDir()
	sd.markerEntry.SetText("draft-")
	sd.cacheDirEntry.SetText(custom)
	sd.confirmCheck.SetChecked(false)
	sd.logLevelSelect.SetSelected("debug")
	sd.languageSelect.SetSelected("ru")

	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, "draft-", settings.GetCacheMarker())
	dir, err := settings.GetCacheDirectory()
	assert.NoError(t, err)
	assert.Equal(t, custom, dir)
	assert.False(t, settings.GetConfirmClearCache())
	assert.Equal(t, "debug", settings.GetLogLevel())
	assert.Equal(t, "ru", settings.GetLanguage())
}

func TestSettingsDialog_UnchangedDirectoryIsNotPinned(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, w, NewLocalization(), nil)
	sd.loadCurrentSettings()

	sd.onSave(true)

	assert.False(t, settings.HasCacheDirectoryOverride())
}

func TestSettingsDialog_EmptyDirectoryRemovesOverride(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	settings.SetCacheDirectory(t.TempDir())
	sd := NewSettingsDialog(settings, w, NewLocalization(), nil)
	sd.loadCurrentSettings()

	sd.cacheDirEntry.SetText("")
	sd.onSave(true)

	assert.False(t, settings.HasCacheDirectoryOverride())
}

func TestSettingsDialog_CancelKeepsValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, w, NewLocalization(), nil)
	sd.loadCurrentSettings()
	sd.markerEntry.SetText("draft-")

	sd.onSave(false)

	assert.Equal(t, config.DefaultCacheMarker, settings.GetCacheMarker())
}
