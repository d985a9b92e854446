// Package chat hosts grounded conversational sessions over a single report.
// The seed context binds the assistant to that report's facts; each turn is
// answered strictly from the seeded context plus conversation history.
package chat

import (
	"fmt"
	"strings"

	"github.com/osintlab/crisisdash/internal/model"
)

const groundingRules = `Rules of Engagement:
- Answer ONLY from the intelligence data above and the conversation so far.
- Do not speculate beyond the provided facts. If the data does not cover a question, say so explicitly.
- Keep replies concise and in a professional analyst tone.`

// SeedFromReport builds the grounding system context for a CrisisReport.
func SeedFromReport(r *model.CrisisReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an Intelligence Liaison for %s. You have indexed one structured crisis assessment and answer field queries strictly from it.\n\n", r.Country)
	fmt.Fprintf(&sb, "SUMMARY: %s\n", r.Summary)
	fmt.Fprintf(&sb, "ESCALATION LEVEL: %s\n", r.EscalationLevel)
	fmt.Fprintf(&sb, "STRATEGIC INSIGHT: %s\n\n", r.StrategicInsight)

	sb.WriteString("INDICATORS:\n")
	for _, s := range r.Scores {
		fmt.Fprintf(&sb, "%d. %s — score %g, severity %g. %s\n", s.ID, s.Name, s.Score, s.Severity, s.Appraisal)
	}

	sb.WriteString("\n")
	sb.WriteString(groundingRules)
	return sb.String()
}

// SeedFromTactical builds the grounding system context for a sweep result.
func SeedFromTactical(a *model.TacticalAnalysis) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a Tactical Liaison for %s. You have indexed the ground-truth incidents from one OSINT sweep and answer field queries strictly from them.\n\n", a.Country)
	fmt.Fprintf(&sb, "OVERALL ASSESSMENT: %s\n\n", a.OverallAssessment)

	if len(a.Incidents) == 0 {
		sb.WriteString("INCIDENTS: none detected in this sweep.\n")
	} else {
		sb.WriteString("INCIDENTS:\n")
		for i, inc := range a.Incidents {
			fmt.Fprintf(&sb, "%d. [%s] %s — %s (%.4f, %.4f), intensity %g, intent %s. %s\n",
				i+1, inc.Category, inc.Summary,
				inc.Coordinates.Landmark, inc.Coordinates.Lat, inc.Coordinates.Lng,
				inc.Intensity, inc.ProactiveIntent, inc.EvidenceSnippet)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(groundingRules)
	return sb.String()
}
