package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/osintlab/crisisdash/internal/framework"
	"github.com/osintlab/crisisdash/internal/model"
)

// NoEvidenceText is the mandated evidence string for indicators with no
// qualifying signals in the window. Such indicators score 0 with severity 1.
const NoEvidenceText = "No significant change observed."

// MaxBaselineStep is the largest score movement per indicator the model is
// instructed to make without naming a specific catalyst.
const MaxBaselineStep = 1.0

const dateLayout = "2 January 2006"

// BuildReportRequest constructs the structured-report analysis request for a
// profile. baseline is the most recent prior report for the same profile, or
// nil for a cold start; when present it seeds the continuity instructions.
func BuildReportRequest(profile string, baseline *model.CrisisReport, now time.Time) (Request, error) {
	names, err := framework.Get(profile)
	if err != nil {
		return Request{}, err
	}
	if baseline != nil && baseline.Country != profile {
		return Request{}, &InvalidBaselineError{Profile: profile, Baseline: baseline.Country}
	}

	windowStart := now.AddDate(0, 0, -7)
	var sb strings.Builder

	fmt.Fprintf(&sb, `System Role: You are a Senior Intelligence Analyst providing a high-level briefing for a Senior Operational Military Commander focused on overseas crisis management in %s.

Analysis Task: Use live web search to find and analyze OSINT and news strictly from the window %s to %s regarding the political and security situation in %s.

Using the Risk Indicator Framework below, assign each indicator a 7-day momentum score from -5 (Significant Escalation / Crisis Risk) to +5 (Significant De-escalation / Stability). The score is a delta within the window, not an absolute state.

`, profile, windowStart.Format(dateLayout), now.Format(dateLayout), profile)

	fmt.Fprintf(&sb, "Framework (%d indicators — respond with EXACTLY %d entries, ids 1 to %d in this order, none omitted, none added):\n", len(names), len(names), len(names))
	for i, name := range names {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
	}

	fmt.Fprintf(&sb, `
Scoring Rules:
- An indicator with no qualifying evidence in the window MUST be scored 0 with severity 1 and evidence %q. Never omit it and never return null.
- severity (1-5) is impact magnitude, independent of the score's sign.
- For each indicator provide an estimated 6-month average score (averageSixMonthScore) and a historicalTrend of exactly 6 monthly values in chronological order, each between -5 and +5.
- For each indicator provide an ACH assessment: increasingRiskEvidence (case for deterioration) and stabilizingRiskEvidence (case for de-escalation).

Source Credibility Protocol (Admiralty grading, reliability A-F x credibility 1-6):
- Only sources graded B2 or better may contribute to a numeric score.
- Signals from sub-threshold sources MUST NOT affect any score. Surface them only in unverifiedEvents, each carrying its source grade and the reason for exclusion.
- A claim corroborated by 3 or more independent sources carries double evidentiary weight; set isCorroborated true for the affected indicator.
- A single-sourced claim is discounted by half.
- Categorize every cited source as Local, Regional, or International and assign its Admiralty rating.

Reporting Standards:
- Language: professional military-grade intelligence terminology.
- summary: a comprehensive paragraph covering key kinetic and political shifts in the window.
- strategicInsight: a paragraph-length assessment of impact on international strategic interests, immediate and 6-month outlook.
- escalationLevel: overall operational rollup, one of Low, Medium, High, Critical.
`, NoEvidenceText)

	if baseline != nil {
		sb.WriteString("\nContinuity Baseline (previous scan scores for this profile):\n")
		for _, s := range baseline.Scores {
			fmt.Fprintf(&sb, "%d. %s: %g\n", s.ID, s.Name, s.Score)
		}
		fmt.Fprintf(&sb, `
Continuity Rules:
- Do not move any indicator more than %.1f points from its baseline score unless a specific, identifiable catalyst occurred in the window; if you do, name the catalyst in the appraisal.
- Prefer a 0 change ("no significant change") over speculative volatility. Stability between scans is the expected default.
`, MaxBaselineStep)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, reportSchemaText, len(names), len(names))

	contents := fmt.Sprintf(
		"Scan OSINT and news from %s to %s for %s. Provide a full intelligence brief for a senior military commander, including 6-month average baselines for trending and Admiralty-graded sourcing.",
		windowStart.Format(dateLayout), now.Format(dateLayout), profile)

	return Request{
		System:      sb.String(),
		Contents:    contents,
		UseSearch:   true,
		Temperature: 0.2,
	}, nil
}

// reportSchemaText declares the exact reply shape. The transport additionally
// forces JSON output; the schema here is the contract of record.
const reportSchemaText = `Output ONLY valid JSON matching this schema. No prose, no markdown fences.
{
  "summary": "string",
  "escalationLevel": "Low|Medium|High|Critical",
  "strategicInsight": "string",
  "scores": [
    {
      "id": 1,
      "name": "string (framework indicator name)",
      "score": 0.0,
      "severity": 1.0,
      "evidence": "string",
      "appraisal": "string",
      "averageSixMonthScore": 0.0,
      "historicalTrend": [0, 0, 0, 0, 0, 0],
      "reliability": "A-F",
      "credibility": 1,
      "confidenceLevel": 0,
      "isCorroborated": false,
      "increasingRiskEvidence": "string",
      "stabilizingRiskEvidence": "string"
    }
  ],
  "keySources": [
    {"title": "string", "uri": "string", "rating": "B2", "type": "Local|Regional|International"}
  ],
  "unverifiedEvents": [
    {"title": "string", "uri": "string", "reason": "string", "sourceGrade": "C3"}
  ]
}
The scores array must contain exactly %d entries with ids 1 through %d.`
