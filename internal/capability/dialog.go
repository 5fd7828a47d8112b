package capability

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// DialogPluginName is the registered name of the dialog capability
const DialogPluginName = "dialog"

var ErrNoWindow = errors.New("dialog plugin has no parent window")

// DialogPlugin shows native-looking dialogs parented to the main window
type DialogPlugin struct {
	window fyne.Window
}

// NewDialogPlugin creates a dialog plugin; the window can be attached later
func NewDialogPlugin(window fyne.Window) *DialogPlugin {
	return &DialogPlugin{window: window}
}

func (p *DialogPlugin) Name() string { return DialogPluginName }

func (p *DialogPlugin) Init(app fyne.App) error {
	if app == nil {
		return errors.New("app is nil")
	}
	return nil
}

// SetWindow sets the parent window for subsequent dialogs
func (p *DialogPlugin) SetWindow(w fyne.Window) {
	p.window = w
}

// ShowError displays err
func (p *DialogPlugin) ShowError(err error) error {
	if p.window == nil {
		return ErrNoWindow
	}
	dialog.ShowError(err, p.window)
	return nil
}

// ShowInformation displays an informational message
func (p *DialogPlugin) ShowInformation(title, message string) error {
	if p.window == nil {
		return ErrNoWindow
	}
	dialog.ShowInformation(title, message, p.window)
	return nil
}

// Confirm asks a yes/no question; callback receives the answer
func (p *DialogPlugin) Confirm(title, message string, callback func(bool)) error {
	if p.window == nil {
		return ErrNoWindow
	}
	dialog.ShowConfirm(title, message, callback, p.window)
	return nil
}

// PickFile opens a file chooser and passes the selected path to callback.
// Cancelling the chooser does not invoke callback.
func (p *DialogPlugin) PickFile(callback func(path string)) error {
	if p.window == nil {
		return ErrNoWindow
	}
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		callback(path)
	}, p.window)
	return nil
}

// PickFolder opens a folder chooser and passes the selected path to callback
func (p *DialogPlugin) PickFolder(callback func(path string)) error {
	if p.window == nil {
		return ErrNoWindow
	}
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		callback(uri.Path())
	}, p.window)
	return nil
}
