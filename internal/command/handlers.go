package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ytget/filedesk/internal/model"
	"github.com/ytget/filedesk/internal/platform"
)

// Command names exposed to the UI layer
const (
	ShowInFolder = "show_in_folder"
	ClearCache   = "clear_cache"
)

// ShowInFolderArgs is the payload of show_in_folder
type ShowInFolderArgs struct {
	Path string `json:"path"`
}

// CacheClearer is satisfied by *cache.Cleaner
type CacheClearer interface {
	Clear(ctx context.Context) (*model.ClearReport, error)
}

// ShowInFolderHandler reveals args.path with the platform revealer. The file
// manager is started detached; the handler returns once it is launched.
func ShowInFolderHandler(revealer platform.Revealer) Handler {
	return func(_ context.Context, raw json.RawMessage) (any, error) {
		var args ShowInFolderArgs
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
			}
		}
		if err := revealer.Reveal(args.Path); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// ClearCacheHandler clears marker-named cache entries. It takes no arguments;
// any payload is ignored. The value is the *model.ClearReport.
func ClearCacheHandler(clearer CacheClearer) Handler {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		report, err := clearer.Clear(ctx)
		if err != nil {
			return nil, err
		}
		return report, nil
	}
}

// RegisterDefaults registers show_in_folder and clear_cache
func RegisterDefaults(r *Registry, revealer platform.Revealer, clearer CacheClearer) error {
	if err := r.Register(ShowInFolder, ShowInFolderHandler(revealer)); err != nil {
		return err
	}
	return r.Register(ClearCache, ClearCacheHandler(clearer))
}
