package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   config.CmdSettings,
	Short: config.ShortSettings,
	Long: `Show the effective settings: the settings file, when present, overridden
by the global flags.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   config.CmdInit,
	Short: config.ShortInit,
	Args:  cobra.NoArgs,
	RunE:  runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	return settings.Encode(cmd.OutOrStdout())
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if activeSettingsPath == "" {
		return errors.New(config.ErrConfigDir)
	}
	if err := settings.Save(activeSettingsPath); err != nil {
		return err
	}
	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompSettings,
		config.LogKeyFile, activeSettingsPath)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), activeSettingsPath)
	return err
}
