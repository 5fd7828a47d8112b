package capability

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// FilesystemPluginName is the registered name of the filesystem capability
const FilesystemPluginName = "fs"

// FilesystemPlugin exposes read-only filesystem queries through Fyne storage
type FilesystemPlugin struct{}

// NewFilesystemPlugin creates an uninitialised filesystem plugin
func NewFilesystemPlugin() *FilesystemPlugin {
	return &FilesystemPlugin{}
}

func (p *FilesystemPlugin) Name() string { return FilesystemPluginName }

func (p *FilesystemPlugin) Init(app fyne.App) error {
	if app == nil {
		return errors.New("app is nil")
	}
	return nil
}

// Exists reports whether path exists on the local filesystem
func (p *FilesystemPlugin) Exists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	return storage.Exists(storage.NewFileURI(path))
}

// List returns the names of the direct entries of dir
func (p *FilesystemPlugin) List(dir string) ([]string, error) {
	uris, err := storage.List(storage.NewFileURI(dir))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(uris))
	for _, u := range uris {
		names = append(names, u.Name())
	}
	return names, nil
}
