package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/filedesk/internal/capability"
	"github.com/ytget/filedesk/internal/command"
	"github.com/ytget/filedesk/internal/config"
	"github.com/ytget/filedesk/internal/metrics"
	"github.com/ytget/filedesk/internal/model"
)

// Dispatcher sends commands over the bridge. Implemented by *command.Registry.
type Dispatcher interface {
	DispatchJSON(ctx context.Context, name string, args any) command.Result
}

// StatsSource reads back the command counters. Implemented by *metrics.Metrics.
type StatsSource interface {
	Snapshot() (metrics.Stats, error)
}

// RootUI represents the main window contents
type RootUI struct {
	window       fyne.Window
	pathEntry    *widget.Entry
	browseBtn    *widget.Button
	revealBtn    *widget.Button
	clearBtn     *widget.Button
	statusLabel  *widget.Label
	bridge       Dispatcher
	dialogs      *capability.DialogPlugin
	fs           *capability.FilesystemPlugin
	settings     *config.Settings
	stats        StatsSource
	localization *Localization
	logger       zerolog.Logger

	// run executes command work off the UI goroutine
	run func(func())

	statusTimeout time.Duration

	// onSettingsSaved is called after the settings dialog is saved
	onSettingsSaved func()
}

// NewRootUI creates the window contents. Plugins are looked up on host; a
// missing dialog plugin degrades to status-line messages.
func NewRootUI(window fyne.Window, settings *config.Settings, bridge Dispatcher, host *capability.Host, logger zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		bridge:       bridge,
		settings:     settings,
		localization: localization,
		logger:       logger.With().Str("component", "ui").Logger(),
		run:          func(f func()) { go f() },

		statusTimeout: StatusAutoHide,
	}

	if dialogs, ok := capability.Lookup[*capability.DialogPlugin](host); ok {
		dialogs.SetWindow(window)
		ui.dialogs = dialogs
	}
	if fs, ok := capability.Lookup[*capability.FilesystemPlugin](host); ok {
		ui.fs = fs
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// SetOnSettingsSaved registers a callback run after settings are saved
func (ui *RootUI) SetOnSettingsSaved(callback func()) {
	ui.onSettingsSaved = callback
}

// SetStatsSource enables the statistics menu item
func (ui *RootUI) SetStatsSource(stats StatsSource) {
	ui.stats = stats
	ui.createMenu()
}

// OnInvocationUpdate keeps a command's button disabled while it runs. It is
// meant for command.Registry.SetUpdateCallback and may be called from any
// goroutine.
func (ui *RootUI) OnInvocationUpdate(inv *model.Invocation) {
	fyne.Do(func() {
		ui.applyInvocation(inv)
	})
}

func (ui *RootUI) applyInvocation(inv *model.Invocation) {
	var btn *widget.Button
	switch inv.Command {
	case command.ShowInFolder:
		btn = ui.revealBtn
	case command.ClearCache:
		btn = ui.clearBtn
	default:
		return
	}

	switch {
	case inv.Status.IsActive():
		btn.Disable()
	case inv.Status.IsFinished():
		btn.Enable()
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPath))
	ui.pathEntry.OnSubmitted = func(string) {
		ui.onRevealClick()
	}

	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseClick)
	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyShowInFolder), ui.onRevealClick)
	ui.revealBtn.Importance = widget.HighImportance
	ui.clearBtn = widget.NewButton(IconDelete+" "+ui.localization.GetText(KeyClearCache), ui.onClearCacheClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	pathRow := container.NewBorder(nil, nil, settingsBtn, ui.browseBtn, ui.pathEntry)
	actions := container.NewHBox(ui.revealBtn, ui.clearBtn)

	ui.window.SetContent(container.NewVBox(pathRow, actions, widget.NewSeparator(), ui.statusLabel))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	clearItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearCache), ui.onClearCacheClick)
	fileItems := []*fyne.MenuItem{settingsItem, fyne.NewMenuItemSeparator(), clearItem}
	if ui.stats != nil {
		fileItems = append(fileItems, fyne.NewMenuItem(ui.localization.GetText(KeyStatistics), ui.onShowStats))
	}

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), fileItems...),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPath))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.revealBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyShowInFolder))
	ui.clearBtn.SetText(IconDelete + " " + ui.localization.GetText(KeyClearCache))
}

// onBrowseClick lets the user pick a file with the dialog capability
func (ui *RootUI) onBrowseClick() {
	if ui.dialogs == nil {
		return
	}
	if err := ui.dialogs.PickFile(func(path string) {
		ui.pathEntry.SetText(path)
	}); err != nil {
		ui.logger.Warn().Err(err).Msg("file picker unavailable")
	}
}

// onRevealClick dispatches show_in_folder for the entered path
func (ui *RootUI) onRevealClick() {
	path := strings.TrimSpace(ui.pathEntry.Text)
	if path == "" {
		ui.setStatus(ui.localization.GetText(KeyPleaseEnterPath))
		return
	}

	if ui.fs != nil {
		exists, err := ui.fs.Exists(path)
		if err == nil && !exists {
			ui.showError(KeyPathNotFound, path)
			return
		}
	}

	ui.run(func() {
		res := ui.bridge.DispatchJSON(context.Background(), command.ShowInFolder, command.ShowInFolderArgs{Path: path})
		fyne.Do(func() {
			if !res.OK {
				ui.showError(KeyErrorOpeningFolder, res.Error)
				return
			}
			ui.setStatus(ui.localization.GetText(KeyRevealed))
		})
	})
}

// onClearCacheClick asks for confirmation when enabled, then clears the cache
func (ui *RootUI) onClearCacheClick() {
	if !ui.settings.GetConfirmClearCache() || ui.dialogs == nil {
		ui.clearCache()
		return
	}

	err := ui.dialogs.Confirm(
		ui.localization.GetText(KeyConfirmClearTitle),
		ui.localization.GetText(KeyConfirmClearMessage),
		func(confirmed bool) {
			if confirmed {
				ui.clearCache()
			}
		},
	)
	if err != nil {
		ui.logger.Warn().Err(err).Msg("confirmation unavailable, clearing without asking")
		ui.clearCache()
	}
}

// clearCache dispatches clear_cache and reports the outcome
func (ui *RootUI) clearCache() {
	ui.setStatus(ui.localization.GetText(KeyClearingCache))

	ui.run(func() {
		res := ui.bridge.DispatchJSON(context.Background(), command.ClearCache, nil)
		fyne.Do(func() {
			if !res.OK {
				ui.setStatus("")
				ui.showError(KeyErrorClearingCache, res.Error)
				return
			}
			if report, ok := res.Value.(*model.ClearReport); ok {
				ui.setStatus(report.Summary())
			} else {
				ui.setStatus("")
			}
		})
	})
}

// onShowStats shows command counters and the number of cache files that a
// clear would remove
func (ui *RootUI) onShowStats() {
	if ui.stats == nil {
		return
	}
	stats, err := ui.stats.Snapshot()
	if err != nil {
		ui.showError(KeyStatistics, err.Error())
		return
	}

	lines := []string{
		fmt.Sprintf(ui.localization.GetText(KeyStatsCommands), stats.Commands(), stats.Failed),
		fmt.Sprintf(ui.localization.GetText(KeyStatsRemoved), stats.RemovedEntries),
	}
	if pending, ok := ui.pendingCacheFiles(); ok {
		lines = append(lines, fmt.Sprintf(ui.localization.GetText(KeyStatsPending), pending))
	}
	msg := strings.Join(lines, "\n")

	if ui.dialogs != nil {
		if err := ui.dialogs.ShowInformation(ui.localization.GetText(KeyStatistics), msg); err == nil {
			return
		}
	}
	ui.setStatus(strings.Join(lines, "; "))
}

// pendingCacheFiles counts cache directory entries matching the marker
func (ui *RootUI) pendingCacheFiles() (int, bool) {
	if ui.fs == nil {
		return 0, false
	}
	dir, err := ui.settings.GetCacheDirectory()
	if err != nil {
		return 0, false
	}
	names, err := ui.fs.List(dir)
	if err != nil {
		ui.logger.Debug().Err(err).Str("dir", dir).Msg("cannot list cache directory")
		return 0, false
	}

	marker := ui.settings.GetCacheMarker()
	count := 0
	for _, name := range names {
		if strings.Contains(name, marker) {
			count++
		}
	}
	return count, true
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.dialogs)
	sd.SetOnSaved(func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		if ui.onSettingsSaved != nil {
			ui.onSettingsSaved()
		}
	})
	sd.Show()
}

// showError reports a failure through the dialog capability when available
func (ui *RootUI) showError(key, detail string) {
	msg := fmt.Sprintf("%s: %s", ui.localization.GetText(key), detail)
	ui.logger.Error().Str("detail", detail).Msg(ui.localization.GetText(key))

	if ui.dialogs != nil {
		if err := ui.dialogs.ShowError(errors.New(msg)); err == nil {
			return
		}
	}
	ui.setStatus(msg)
}

// setStatus shows text in the status line and hides it after statusTimeout
func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
	if text == "" || ui.statusTimeout <= 0 {
		return
	}
	time.AfterFunc(ui.statusTimeout, func() {
		fyne.Do(func() {
			if ui.statusLabel.Text == text {
				ui.statusLabel.SetText("")
			}
		})
	})
}
