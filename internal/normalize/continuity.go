package normalize

import (
	"math"
	"strings"

	"github.com/osintlab/crisisdash/internal/model"
	"github.com/osintlab/crisisdash/internal/prompt"
)

// ContinuityFinding marks an indicator whose score moved further from the
// baseline than the instructed step without a catalyst explanation in its
// appraisal. Findings are advisory: a flagged report is still accepted.
type ContinuityFinding struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Baseline float64 `json:"baseline"`
	Current  float64 `json:"current"`
	Delta    float64 `json:"delta"`
}

// ContinuityFindings compares a new report against its baseline and flags
// large uncatalyzed swings. Returns nil when there is no baseline or the
// reports disagree on profile (nothing meaningful to compare).
func ContinuityFindings(baseline, report *model.CrisisReport) []ContinuityFinding {
	if baseline == nil || report == nil || baseline.Country != report.Country {
		return nil
	}

	prior := make(map[int]model.IndicatorResult, len(baseline.Scores))
	for _, s := range baseline.Scores {
		prior[s.ID] = s
	}

	var findings []ContinuityFinding
	for _, s := range report.Scores {
		b, ok := prior[s.ID]
		if !ok {
			continue
		}
		delta := s.Score - b.Score
		if math.Abs(delta) <= prompt.MaxBaselineStep {
			continue
		}
		if hasCatalyst(s) {
			continue
		}
		findings = append(findings, ContinuityFinding{
			ID:       s.ID,
			Name:     s.Name,
			Baseline: b.Score,
			Current:  s.Score,
			Delta:    delta,
		})
	}
	return findings
}

// hasCatalyst reports whether the indicator carries substantive explanatory
// text for its movement. A blank appraisal or the no-evidence boilerplate
// does not justify a large swing.
func hasCatalyst(s model.IndicatorResult) bool {
	appraisal := strings.TrimSpace(s.Appraisal)
	if appraisal == "" || appraisal == prompt.NoEvidenceText {
		return false
	}
	evidence := strings.TrimSpace(s.Evidence)
	return evidence != "" && evidence != prompt.NoEvidenceText
}
