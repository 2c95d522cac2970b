package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the user preferences read from the TOML settings file.
// Command line flags take precedence over every field.
type Settings struct {
	// Language is the display language selector (1..LanguageCount).
	Language int `toml:"language"`

	// Reminder is an ISO8601 duration used as VALARM trigger (e.g. "-P1D").
	// Empty disables alarms.
	Reminder string `toml:"reminder"`

	// SortBy is the default contact ordering: "date", "name" or "age".
	SortBy string `toml:"sort_by"`

	// Descending reverses the contact ordering.
	Descending bool `toml:"descending"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Language: DefaultLanguage,
		SortBy:   DefaultSortKey,
	}
}

// DefaultSettingsPath returns <UserConfigDir>/go-birthfacts/config.toml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, BinaryName, SettingsFile), nil
}

// LoadSettings reads the settings file at path.
// A missing file is not an error: defaults are returned instead.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug(MsgSettingsAbsent,
			LogKeyComponent, CompSettings,
			LogKeyFile, path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}

	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompSettings,
		LogKeyFile, path,
		LogKeyLang, s.Language)
	return s, nil
}

// Validate normalizes the settings in place.
// Out of range languages fall back to the default; an unknown sort key is an error.
func (s *Settings) Validate() error {
	if s.Language < 1 || s.Language > LanguageCount {
		s.Language = DefaultLanguage
	}
	switch s.SortBy {
	case "":
		s.SortBy = DefaultSortKey
	case SortByDate, SortByName, SortByAge:
	default:
		return fmt.Errorf("%s: %q", ErrSettingsSortKey, s.SortBy)
	}
	return nil
}

// Encode writes the settings to w as TOML.
func (s Settings) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Save writes the settings to path, creating the parent directory if needed.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, FilePermUserRW)
}
