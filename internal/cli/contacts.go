package cli

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
	"github.com/tartampluch/go-birthfacts/internal/ui"
)

var (
	contactsFile string
	contactsSort string
	contactsDesc bool
)

var contactsCmd = &cobra.Command{
	Use:   config.CmdContacts,
	Short: config.ShortContacts,
	Long: `List the contacts of a vCard file that have a birthday, with their next
birthday, age, zodiac sign and symbolic animal.

Contacts without a birth year have no age and no animal.`,
	Args: cobra.NoArgs,
	RunE: runContacts,
}

func init() {
	contactsCmd.Flags().StringVar(&contactsFile, config.FlagFile, "", config.FlagDescFile)
	contactsCmd.Flags().StringVar(&contactsSort, config.FlagSort, config.DefaultSortKey, config.FlagDescSort)
	contactsCmd.Flags().BoolVar(&contactsDesc, config.FlagDesc, false, config.FlagDescDesc)
	_ = contactsCmd.MarkFlagRequired(config.FlagFile)
	rootCmd.AddCommand(contactsCmd)
}

func runContacts(cmd *cobra.Command, _ []string) error {
	order := settings
	if cmd.Flags().Changed(config.FlagSort) {
		order.SortBy = contactsSort
	}
	if cmd.Flags().Changed(config.FlagDesc) {
		order.Descending = contactsDesc
	}
	if err := order.Validate(); err != nil {
		return err
	}

	tr := ui.NewTranslator(language())
	_, entries, _, err := newGenerator(tr).Run(cmd.Context(), engine.ExportConfig{LocalPath: contactsFile})
	if err != nil {
		return err
	}

	engine.SortEntries(entries, order.SortBy, !order.Descending)
	return tr.RenderContacts(cmd.OutOrStdout(), entries)
}
