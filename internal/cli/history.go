package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osintlab/crisisdash/internal/store"
)

var (
	historyID        string
	historyStorePath string
	historyTactical  bool
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored reports, newest first",
	Long: `History lists the persisted report archive. With --id it prints one
report in full.

Example:
  crisisdash history
  crisisdash history --tactical
  crisisdash history --id 7F3A1B2C9`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyID, "id", "", "show one report in full")
	historyCmd.Flags().StringVar(&historyStorePath, "store", "", "report history path")
	historyCmd.Flags().BoolVar(&historyTactical, "tactical", false, "list tactical sweeps instead of crisis reports")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := buildConfig("", "", historyStorePath, 0, false)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)

	if historyID != "" {
		return showOne(st, historyID)
	}

	if historyTactical {
		analyses := st.ListTactical()
		if len(analyses) == 0 {
			fmt.Println("No tactical sweeps stored.")
			return nil
		}
		for _, a := range analyses {
			fmt.Printf("%-18s %-24s %s  %d incident(s)\n",
				a.ID, a.Country, formatTimestamp(a.Timestamp), len(a.Incidents))
		}
		return nil
	}

	reports := st.ListAll()
	if len(reports) == 0 {
		fmt.Println("No reports stored.")
		return nil
	}
	for _, r := range reports {
		fmt.Printf("%-12s %-24s %s  %s\n", r.ID, r.Country, formatTimestamp(r.Timestamp), r.EscalationLevel)
	}
	return nil
}

func showOne(st *store.Store, id string) error {
	if r := st.Get(id); r != nil {
		printReport(r)
		return nil
	}
	if a := st.GetTactical(id); a != nil {
		printTactical(a)
		return nil
	}
	return fmt.Errorf("no report with id %q", id)
}

func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04 MST")
}
