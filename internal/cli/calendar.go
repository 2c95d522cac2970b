package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
	"github.com/tartampluch/go-birthfacts/internal/ui"
)

var (
	calendarFile     string
	calendarOut      string
	calendarReminder string
)

var calendarCmd = &cobra.Command{
	Use:   config.CmdCalendar,
	Short: config.ShortCalendar,
	Long: `Export the birthdays of a vCard file as an iCalendar feed.

Each contact gets one all-day event for the previous, current and next year,
with the zodiac sign and symbolic animal in the description.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarFile, config.FlagFile, "", config.FlagDescFile)
	calendarCmd.Flags().StringVar(&calendarOut, config.FlagOut, "", config.FlagDescOut)
	calendarCmd.Flags().StringVar(&calendarReminder, config.FlagReminder, "", config.FlagDescReminder)
	_ = calendarCmd.MarkFlagRequired(config.FlagFile)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	reminder := settings.Reminder
	if cmd.Flags().Changed(config.FlagReminder) {
		reminder = calendarReminder
	}

	gen := newGenerator(ui.NewTranslator(language()))
	ics, _, today, err := gen.Run(cmd.Context(), engine.ExportConfig{
		LocalPath:       calendarFile,
		ReminderTrigger: reminder,
	})
	if err != nil {
		return err
	}

	if calendarOut == "" {
		if _, err := cmd.OutOrStdout().Write(ics); err != nil {
			return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
		}
		return nil
	}

	path := calendarOut
	if filepath.Ext(path) == "" {
		path += config.ExtICS
	}
	if err := os.WriteFile(path, ics, config.FilePermUserRWGroupR); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	slog.Info(config.MsgCalendarSaved,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(ics),
		config.LogKeyToday, today)
	return nil
}
