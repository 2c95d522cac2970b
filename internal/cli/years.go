package cli

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
	"github.com/tartampluch/go-birthfacts/internal/ui"
)

var yearsQuery ui.YearsQuery

var yearsCmd = &cobra.Command{
	Use:   config.CmdYears,
	Short: config.ShortYears,
	Long: `List the birth years, within an age range, of people born in a given
symbolic animal year.

Every flag is optional: a single age is used for both ends of the range and
a month or day that does not exist falls back to January or the 1st. Birthdays
before Chinese New Year belong to the previous animal year.`,
	Args: cobra.NoArgs,
	RunE: runYears,
}

func init() {
	yearsCmd.Flags().IntVar(&yearsQuery.Animal, config.FlagAnimal, 0, config.FlagDescAnimal)
	yearsCmd.Flags().IntVar(&yearsQuery.Age1, config.FlagAge1, 0, config.FlagDescAge1)
	yearsCmd.Flags().IntVar(&yearsQuery.Age2, config.FlagAge2, 0, config.FlagDescAge2)
	yearsCmd.Flags().IntVar(&yearsQuery.Month, config.FlagMonth, config.DefaultMonth, config.FlagDescMonth)
	yearsCmd.Flags().IntVar(&yearsQuery.Day, config.FlagDay, config.DefaultDay, config.FlagDescDay)
	rootCmd.AddCommand(yearsCmd)
}

func runYears(cmd *cobra.Command, _ []string) error {
	q := yearsQuery
	q.Age1Set = cmd.Flags().Changed(config.FlagAge1)
	q.Age2Set = cmd.Flags().Changed(config.FlagAge2)

	res, err := ui.BuildYears(engine.NewCalendar(clock), q)
	if err != nil {
		return err
	}
	return ui.NewTranslator(language()).RenderYears(cmd.OutOrStdout(), res)
}
