package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/osintlab/crisisdash/internal/model"
)

var (
	sweepProvider  string
	sweepModel     string
	sweepStorePath string
	sweepTimeout   time.Duration
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep <country>",
	Short: "Run a real-time tactical incident sweep",
	Long: `Sweep requests an incident-level extraction from the last 24-48 hours
of open-source social and news signals: discrete incidents with category,
coordinates, intensity, and intent. Sweeps are independent of report
history — no baseline or continuity applies, and a quiet period
legitimately yields zero incidents.

Example:
  crisisdash sweep Libya
  crisisdash sweep "South Sudan"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&sweepProvider, "provider", "", "model provider (gemini, openai)")
	sweepCmd.Flags().StringVar(&sweepModel, "model", "", "model name (provider-specific)")
	sweepCmd.Flags().StringVar(&sweepStorePath, "store", "", "report history path")
	sweepCmd.Flags().DurationVar(&sweepTimeout, "timeout", 0, "model round-trip timeout")
}

func runSweep(cmd *cobra.Command, args []string) error {
	country := strings.Join(args, " ")

	cfg := buildConfig(sweepProvider, sweepModel, sweepStorePath, sweepTimeout, true)
	p, _, err := openPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Sweeping: %s\n\n", country)
	}

	analysis, err := p.Sweep(context.Background(), country)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	printTactical(analysis)
	return nil
}

func printTactical(a *model.TacticalAnalysis) {
	fmt.Printf("Sweep %s — %s — %d incident(s)\n\n", a.ID, a.Country, len(a.Incidents))
	fmt.Printf("ASSESSMENT\n%s\n", a.OverallAssessment)

	for i, inc := range a.Incidents {
		fmt.Printf("\n%d. [%s] intensity %g, %s\n", i+1, inc.Category, inc.Intensity, inc.ProactiveIntent)
		fmt.Printf("   %s\n", inc.Summary)
		fmt.Printf("   %s (%.4f, %.4f)\n", inc.Coordinates.Landmark, inc.Coordinates.Lat, inc.Coordinates.Lng)
		fmt.Printf("   %s\n", inc.EvidenceSnippet)
		if inc.SourceURL != "" {
			fmt.Printf("   source: %s\n", inc.SourceURL)
		}
	}
}
