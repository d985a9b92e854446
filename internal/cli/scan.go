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
	scanProvider  string
	scanModel     string
	scanStorePath string
	scanTimeout   time.Duration
	scanNoCache   bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <profile>",
	Short: "Run a 7-day structured risk scan for a profile",
	Long: `Scan requests a structured intelligence assessment for one country
profile. The external model scores every indicator in the profile's risk
framework over the last 7 days, graded against the Admiralty credibility
protocol. The most recent stored report for the profile seeds the
continuity baseline. The validated report is appended to local history.

Use "crisisdash profiles" to list the available profiles.

Example:
  crisisdash scan Libya
  crisisdash scan "Bosnia and Herzegovina" --provider openai`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanProvider, "provider", "", "model provider (gemini, openai)")
	scanCmd.Flags().StringVar(&scanModel, "model", "", "model name (provider-specific)")
	scanCmd.Flags().StringVar(&scanStorePath, "store", "", "report history path")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "model round-trip timeout")
	scanCmd.Flags().BoolVar(&scanNoCache, "no-cache", false, "force a fresh model round-trip")
}

func runScan(cmd *cobra.Command, args []string) error {
	profile := strings.Join(args, " ")

	cfg := buildConfig(scanProvider, scanModel, scanStorePath, scanTimeout, scanNoCache)
	p, _, err := openPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning profile: %s\n", profile)
		fmt.Fprintf(os.Stderr, "Provider: %s (%s)\n\n", cfg.LLM.Provider, cfg.LLM.Model)
	}

	result, err := p.Scan(context.Background(), profile)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printReport(result.Report)
	if len(result.Continuity) > 0 {
		fmt.Println("\nContinuity flags (uncatalyzed swings vs baseline):")
		for _, f := range result.Continuity {
			fmt.Printf("  #%d %s: %+.1f -> %+.1f (delta %+.1f)\n", f.ID, indicatorShortName(f.Name), f.Baseline, f.Current, f.Delta)
		}
	}
	if verbose && result.FromCache {
		fmt.Fprintln(os.Stderr, "\n(served from scan cache)")
	}
	return nil
}

func printReport(r *model.CrisisReport) {
	fmt.Printf("Report %s — %s — escalation %s\n", r.ID, r.Country, r.EscalationLevel)
	fmt.Printf("%s\n\n", r.ArticleSnippet)
	fmt.Printf("SUMMARY\n%s\n\n", r.Summary)
	fmt.Printf("STRATEGIC INSIGHT\n%s\n\n", r.StrategicInsight)

	fmt.Println("INDICATORS (7-day momentum / severity / 6-month avg):")
	for _, s := range r.Scores {
		fmt.Printf("  %2d. %-42s %+5.1f  sev %g  avg %+4.1f\n", s.ID, indicatorShortName(s.Name), s.Score, s.Severity, s.AverageSixMonthScore)
		if s.Evidence != "" {
			fmt.Printf("      %s\n", s.Evidence)
		}
	}

	if len(r.Sources) > 0 {
		fmt.Println("\nSOURCES:")
		for _, src := range r.Sources {
			line := "  - " + src.Title
			if src.Rating != "" {
				line += " [" + src.Rating + "]"
			}
			if src.Type != "" {
				line += " (" + string(src.Type) + ")"
			}
			fmt.Println(line + " " + src.URI)
		}
	}
	if len(r.UnverifiedEvents) > 0 {
		fmt.Println("\nUNVERIFIED (excluded from scoring):")
		for _, ev := range r.UnverifiedEvents {
			fmt.Printf("  - %s [%s] %s\n", ev.Title, ev.SourceGrade, ev.Reason)
		}
	}
}

// indicatorShortName trims a framework entry to its headline, dropping the
// explanatory clause after the first colon.
func indicatorShortName(name string) string {
	if i := strings.Index(name, ":"); i > 0 {
		return name[:i]
	}
	return name
}
