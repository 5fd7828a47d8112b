package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/filedesk/internal/cache"
	"github.com/ytget/filedesk/internal/logging"
	"github.com/ytget/filedesk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyCacheMarker       = "cache_marker"
	KeyCacheDirectory    = "cache_directory"
	KeyConfirmClearCache = "confirm_clear_cache"
	KeyLogLevel          = "log_level"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultCacheMarker       = cache.DefaultMarker
	DefaultConfirmClearCache = true
	DefaultLogLevel          = "info"
	DefaultLanguage          = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCacheMarker returns the name fragment that marks disposable cache files
func (s *Settings) GetCacheMarker() string {
	marker := s.app.Preferences().String(KeyCacheMarker)
	if marker == "" {
		s.SetCacheMarker(DefaultCacheMarker)
		return DefaultCacheMarker
	}
	return marker
}

// SetCacheMarker sets the cache marker. Blank values reset it to the default.
func (s *Settings) SetCacheMarker(marker string) {
	if strings.TrimSpace(marker) == "" {
		marker = DefaultCacheMarker
	}
	s.app.Preferences().SetString(KeyCacheMarker, marker)
}

// GetCacheDirectory returns the cache directory override, or the
// application's OS-assigned cache directory when none is set
func (s *Settings) GetCacheDirectory() (string, error) {
	if dir := s.app.Preferences().String(KeyCacheDirectory); dir != "" {
		return dir, nil
	}
	return platform.CacheDir(s.app.UniqueID())
}

// SetCacheDirectory sets the cache directory override; empty clears it
func (s *Settings) SetCacheDirectory(dir string) {
	if dir == "" {
		s.app.Preferences().RemoveValue(KeyCacheDirectory)
		return
	}
	s.app.Preferences().SetString(KeyCacheDirectory, dir)
}

// HasCacheDirectoryOverride reports whether a custom cache directory is set
func (s *Settings) HasCacheDirectoryOverride() bool {
	return s.app.Preferences().String(KeyCacheDirectory) != ""
}

// GetConfirmClearCache returns whether clearing the cache asks first
func (s *Settings) GetConfirmClearCache() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmClearCache, DefaultConfirmClearCache)
}

// SetConfirmClearCache sets whether clearing the cache asks first
func (s *Settings) SetConfirmClearCache(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmClearCache, confirm)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level; unknown levels fall back to the default
func (s *Settings) SetLogLevel(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if logging.ParseLevel(level).String() != level {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevelOptions returns selectable log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
