package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osintlab/crisisdash/internal/framework"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List country profiles with a risk indicator framework",
	Long: `Profiles lists every country profile that carries a risk indicator
framework and can be scanned.

Example:
  crisisdash profiles`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	for _, p := range framework.Profiles() {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
