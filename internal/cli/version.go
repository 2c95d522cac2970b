package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   config.CmdVersion,
	Short: config.ShortVersion,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
			config.AppName,
			config.Version,
			config.Commit,
			config.Date,
			runtime.GOOS,
			runtime.GOARCH,
		)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
