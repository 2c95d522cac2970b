// Package cli implements the go-birthfacts command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
	"github.com/tartampluch/go-birthfacts/internal/ui"
)

var (
	debugMode    bool
	settingsPath string
	langFlag     int

	// clock is the source of "today" for every command. Tests replace it.
	clock engine.Clock = engine.RealClock{}

	// settings are the effective preferences: the settings file overridden by flags.
	settings = config.DefaultSettings()

	// activeSettingsPath is the settings file in use, empty when none could be resolved.
	activeSettingsPath string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:               config.BinaryName,
	Short:             config.ShortRoot,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
	rootCmd.PersistentFlags().StringVar(&settingsPath, config.FlagConfig, "", config.FlagDescConfig)
	rootCmd.PersistentFlags().IntVar(&langFlag, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
}

// Execute runs the command line with ctx, which cancels long operations.
// The debug log file is closed whether or not the command succeeds.
func Execute(ctx context.Context) error {
	defer closeLog()
	return rootCmd.ExecuteContext(ctx)
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close() // Best effort close
		logCloser = nil
	}
}

// setup configures logging and loads the settings before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	logCloser = setupLogging(cmd.ErrOrStderr(), debugMode)
	logStartupInfo()

	path := settingsPath
	if path == "" {
		var err error
		if path, err = config.DefaultSettingsPath(); err != nil {
			slog.Warn(config.ErrConfigDir,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyError, err)
		}
	}

	activeSettingsPath = path
	settings = config.DefaultSettings()
	if path != "" {
		s, err := config.LoadSettings(path)
		if err != nil {
			// LoadSettings still returns usable defaults.
			slog.Warn(config.MsgSettingsIgnore,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyFile, path,
				config.LogKeyError, err)
		}
		settings = s
	}

	if cmd.Flags().Changed(config.FlagLang) {
		settings.Language = langFlag
	}
	return settings.Validate()
}

// language returns the effective display language.
func language() engine.Language {
	return engine.Language(settings.Language).Normalize()
}

// newGenerator wires a Generator with the localized formatters of tr.
func newGenerator(tr *ui.Translator) *engine.Generator {
	return &engine.Generator{
		Calendar:          engine.NewCalendar(clock),
		Language:          tr.Lang,
		FormatSummary:     tr.SummaryFormatter(),
		FormatDescription: tr.DescriptionFormatter(),
	}
}
