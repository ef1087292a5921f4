package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csja-dev/csja/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, commit and build date",
	Args:  cobra.NoArgs,
	// No dependencies needed.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "csja %s\n", version.Get())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
