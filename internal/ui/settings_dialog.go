package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/filedesk/internal/capability"
	"github.com/ytget/filedesk/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialogs      *capability.DialogPlugin
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	loadedCacheDir string

	// UI components
	markerEntry    *widget.Entry
	cacheDirEntry  *widget.Entry
	confirmCheck   *widget.Check
	logLevelSelect *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. dialogs may be nil, in
// which case the folder browser is disabled.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, dialogs *capability.DialogPlugin) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		dialogs:      dialogs,
	}

	sd.createUI()
	return sd
}

// SetOnSaved sets the callback run after a successful save
func (sd *SettingsDialog) SetOnSaved(callback func()) {
	sd.onSaved = callback
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.markerEntry = widget.NewEntry()
	sd.markerEntry.SetPlaceHolder(config.DefaultCacheMarker)

	sd.cacheDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	if sd.dialogs == nil {
		browseDirBtn.Disable()
	}
	cacheDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.cacheDirEntry)

	sd.confirmCheck = widget.NewCheck(text(KeyConfirmClear), nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyCacheMarker)+":"),
		sd.markerEntry,

		widget.NewLabel(text(KeyCacheDirectory)+":"),
		cacheDirRow,

		sd.confirmCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.markerEntry.SetText(sd.settings.GetCacheMarker())
	sd.loadedCacheDir = ""
	if dir, err := sd.settings.GetCacheDirectory(); err == nil {
		sd.loadedCacheDir = dir
	}
	sd.cacheDirEntry.SetText(sd.loadedCacheDir)
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmClearCache())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	if sd.dialogs == nil {
		return
	}
	_ = sd.dialogs.PickFolder(func(path string) {
		sd.cacheDirEntry.SetText(path)
	})
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.dialogs != nil {
		_ = sd.dialogs.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved))
	}
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	sd.settings.SetCacheMarker(sd.markerEntry.Text)

	// An empty field drops the override; an unchanged one is not pinned
	switch dir := strings.TrimSpace(sd.cacheDirEntry.Text); {
	case dir == "":
		sd.settings.SetCacheDirectory("")
	case dir != sd.loadedCacheDir:
		sd.settings.SetCacheDirectory(dir)
	}

	sd.settings.SetConfirmClearCache(sd.confirmCheck.Checked)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
