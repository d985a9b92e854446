package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osintlab/crisisdash/internal/chat"
	"github.com/osintlab/crisisdash/internal/llm"
	"github.com/osintlab/crisisdash/internal/store"
)

var (
	chatReportID  string
	chatProfile   string
	chatTactical  bool
	chatProvider  string
	chatModel     string
	chatStorePath string
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open a grounded chat session over a stored report",
	Long: `Chat seeds a conversational session with one report's data and answers
questions strictly from it. The session keeps history across turns; a
failed turn is marked in place and the session stays usable.

Example:
  crisisdash chat --profile Libya           (latest report for the profile)
  crisisdash chat --report 7F3A1B2C9
  crisisdash chat --report TACTICAL-A1B2C3 --tactical`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatReportID, "report", "", "report id to ground the session in")
	chatCmd.Flags().StringVar(&chatProfile, "profile", "", "use the latest report for this profile")
	chatCmd.Flags().BoolVar(&chatTactical, "tactical", false, "ground in a tactical sweep instead of a crisis report")
	chatCmd.Flags().StringVar(&chatProvider, "provider", "", "model provider (gemini, openai)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "model name (provider-specific)")
	chatCmd.Flags().StringVar(&chatStorePath, "store", "", "report history path")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(chatProvider, chatModel, chatStorePath, 0, false)
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return err
	}
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)

	session, banner, err := openSession(st, provider)
	if err != nil {
		return err
	}

	fmt.Println(banner)
	fmt.Println(`Type a question, or "exit" to close the session.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		chunks, err := session.Send(context.Background(), line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "turn failed: %v\n", err)
			continue
		}
		for chunk := range chunks {
			if chunk.Err != nil {
				fmt.Printf("\n%s\n", chat.ErrorMarker)
				break
			}
			fmt.Print(chunk.Text)
		}
		fmt.Println()
	}
}

// openSession resolves the grounding report and starts the session.
func openSession(st *store.Store, provider llm.Provider) (*chat.Session, string, error) {
	if chatTactical {
		if chatReportID == "" {
			return nil, "", fmt.Errorf("--tactical requires --report <id>")
		}
		analysis := st.GetTactical(chatReportID)
		if analysis == nil {
			return nil, "", fmt.Errorf("no tactical analysis with id %q", chatReportID)
		}
		banner := fmt.Sprintf("Tactical Liaison active for %s. %d incident(s) indexed from sweep %s.",
			analysis.Country, len(analysis.Incidents), analysis.ID)
		return chat.NewTacticalSession(provider, analysis), banner, nil
	}

	switch {
	case chatReportID != "":
		report := st.Get(chatReportID)
		if report == nil {
			return nil, "", fmt.Errorf("no report with id %q", chatReportID)
		}
		banner := fmt.Sprintf("Intelligence Liaison active for %s (report %s, escalation %s).",
			report.Country, report.ID, report.EscalationLevel)
		return chat.NewReportSession(provider, report), banner, nil

	case chatProfile != "":
		report := st.FindLatestForProfile(chatProfile)
		if report == nil {
			return nil, "", fmt.Errorf("no stored reports for profile %q", chatProfile)
		}
		banner := fmt.Sprintf("Intelligence Liaison active for %s (report %s, escalation %s).",
			report.Country, report.ID, report.EscalationLevel)
		return chat.NewReportSession(provider, report), banner, nil

	default:
		return nil, "", fmt.Errorf("specify --report <id> or --profile <name>")
	}
}
