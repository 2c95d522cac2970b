package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
	"github.com/tartampluch/go-birthfacts/internal/ui"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   config.CmdReport,
	Short: config.ShortReport,
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, config.FlagDate, "", config.FlagDescDate)
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cal := engine.NewCalendar(clock)
	lang := language()

	r, err := ui.BuildReport(cal, birthDate(cal, reportDate), lang)
	if err != nil {
		return err
	}
	return ui.NewTranslator(lang).RenderReport(cmd.OutOrStdout(), r)
}

// birthDate parses value as a full date. An empty or unparseable value
// (including a date without a year) stands for today.
func birthDate(cal *engine.Calendar, value string) engine.CalendarDate {
	if value == "" {
		return cal.Today()
	}
	t, yearKnown, err := engine.ParseDate(value)
	if err != nil || !yearKnown {
		slog.Warn(config.MsgDateFallback,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyValue, value)
		return cal.Today()
	}
	return engine.DateOf(t)
}
