package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyShowInFolder        = "show_in_folder"
	KeyClearCache          = "clear_cache"
	KeyBrowse              = "browse"
	KeyEnterPath           = "enter_path"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyCacheMarker         = "cache_marker"
	KeyCacheDirectory      = "cache_directory"
	KeyConfirmClear        = "confirm_clear"
	KeyConfirmClearTitle   = "confirm_clear_title"
	KeyConfirmClearMessage = "confirm_clear_message"
	KeyLogLevel            = "log_level"
	KeyPleaseEnterPath     = "please_enter_path"
	KeyPathNotFound        = "path_not_found"
	KeyErrorOpeningFolder  = "error_opening_folder"
	KeyErrorClearingCache  = "error_clearing_cache"
	KeyRevealed            = "revealed"
	KeyClearingCache       = "clearing_cache"
	KeyStatistics          = "statistics"
	KeyStatsCommands       = "stats_commands"
	KeyStatsRemoved        = "stats_removed"
	KeyStatsPending        = "stats_pending"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "FileDesk",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyShowInFolder:        "Show in folder",
		KeyClearCache:          "Clear cache",
		KeyBrowse:              "Browse",
		KeyEnterPath:           "Path to a file or folder",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved",
		KeyCacheMarker:         "Cache file marker",
		KeyCacheDirectory:      "Cache directory",
		KeyConfirmClear:        "Ask before clearing the cache",
		KeyConfirmClearTitle:   "Clear cache",
		KeyConfirmClearMessage: "Delete all cached files? This cannot be undone.",
		KeyLogLevel:            "Log level",
		KeyPleaseEnterPath:     "Please enter a path",
		KeyPathNotFound:        "Path does not exist",
		KeyErrorOpeningFolder:  "Error opening folder",
		KeyErrorClearingCache:  "Error clearing cache",
		KeyRevealed:            "Opened in file manager",
		KeyClearingCache:       "Clearing cache...",
		KeyStatistics:          "Statistics",
		KeyStatsCommands:       "Commands run: %d (failed: %d)",
		KeyStatsRemoved:        "Cache files removed: %d",
		KeyStatsPending:        "Cache files waiting: %d",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "FileDesk",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyShowInFolder:        "Показать в папке",
		KeyClearCache:          "Очистить кэш",
		KeyBrowse:              "Обзор",
		KeyEnterPath:           "Путь к файлу или папке",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки сохранены",
		KeyCacheMarker:         "Метка файлов кэша",
		KeyCacheDirectory:      "Папка кэша",
		KeyConfirmClear:        "Спрашивать перед очисткой кэша",
		KeyConfirmClearTitle:   "Очистка кэша",
		KeyConfirmClearMessage: "Удалить все файлы кэша? Это действие необратимо.",
		KeyLogLevel:            "Уровень журнала",
		KeyPleaseEnterPath:     "Пожалуйста, введите путь",
		KeyPathNotFound:        "Путь не существует",
		KeyErrorOpeningFolder:  "Ошибка открытия папки",
		KeyErrorClearingCache:  "Ошибка очистки кэша",
		KeyRevealed:            "Открыто в файловом менеджере",
		KeyClearingCache:       "Очистка кэша...",
		KeyStatistics:          "Статистика",
		KeyStatsCommands:       "Выполнено команд: %d (с ошибкой: %d)",
		KeyStatsRemoved:        "Удалено файлов кэша: %d",
		KeyStatsPending:        "Файлов кэша к удалению: %d",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "FileDesk",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyShowInFolder:        "Mostrar na pasta",
		KeyClearCache:          "Limpar cache",
		KeyBrowse:              "Navegar",
		KeyEnterPath:           "Caminho de um arquivo ou pasta",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas",
		KeyCacheMarker:         "Marcador de arquivos de cache",
		KeyCacheDirectory:      "Diretório de cache",
		KeyConfirmClear:        "Perguntar antes de limpar o cache",
		KeyConfirmClearTitle:   "Limpar cache",
		KeyConfirmClearMessage: "Excluir todos os arquivos em cache? Isso não pode ser desfeito.",
		KeyLogLevel:            "Nível de log",
		KeyPleaseEnterPath:     "Por favor, digite um caminho",
		KeyPathNotFound:        "O caminho não existe",
		KeyErrorOpeningFolder:  "Erro ao abrir pasta",
		KeyErrorClearingCache:  "Erro ao limpar cache",
		KeyRevealed:            "Aberto no gerenciador de arquivos",
		KeyClearingCache:       "Limpando cache...",
		KeyStatistics:          "Estatísticas",
		KeyStatsCommands:       "Comandos executados: %d (com falha: %d)",
		KeyStatsRemoved:        "Arquivos de cache removidos: %d",
		KeyStatsPending:        "Arquivos de cache pendentes: %d",
	}
}
