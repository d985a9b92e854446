package model

// EscalationLevel is the coarse operational rollup for a report, distinct
// from any individual indicator score.
type EscalationLevel string

const (
	EscalationLow      EscalationLevel = "Low"
	EscalationMedium   EscalationLevel = "Medium"
	EscalationHigh     EscalationLevel = "High"
	EscalationCritical EscalationLevel = "Critical"
)

// Valid reports whether l is one of the defined escalation levels.
func (l EscalationLevel) Valid() bool {
	switch l {
	case EscalationLow, EscalationMedium, EscalationHigh, EscalationCritical:
		return true
	}
	return false
}

// SourceType classifies the geographic reach of a cited source.
type SourceType string

const (
	SourceLocal         SourceType = "Local"
	SourceRegional      SourceType = "Regional"
	SourceInternational SourceType = "International"
)

// IndicatorResult is the scored outcome for one framework indicator.
// Score is a 7-day momentum delta, not an absolute state: 0 means "no
// qualifying evidence in the window", never null or omitted.
type IndicatorResult struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`    // -5 to +5
	Severity float64 `json:"severity"` // 1 to 5

	Evidence  string `json:"evidence"`  // single-sentence tactical precis
	Appraisal string `json:"appraisal"` // narrative justifying score/severity

	AverageSixMonthScore float64   `json:"averageSixMonthScore"`
	HistoricalTrend      []float64 `json:"historicalTrend"` // 6 monthly values, chronological

	// Intelligence grading
	Reliability     string `json:"reliability,omitempty"` // A-F
	Credibility     int    `json:"credibility,omitempty"` // 1-6
	ConfidenceLevel int    `json:"confidenceLevel,omitempty"`
	IsCorroborated  bool   `json:"isCorroborated,omitempty"` // 3+ independent sources agree

	// ACH competing-hypothesis evidence
	IncreasingRiskEvidence  string `json:"increasingRiskEvidence,omitempty"`
	StabilizingRiskEvidence string `json:"stabilizingRiskEvidence,omitempty"`
}

// Source is a cited reference, unique by URI within a report.
type Source struct {
	Title  string     `json:"title"`
	URI    string     `json:"uri"`
	Rating string     `json:"rating,omitempty"` // Admiralty grade, e.g. "B2"
	Type   SourceType `json:"type,omitempty"`
}

// UnverifiedEvent is a signal excluded from numeric scoring because its
// source grade fell below the acceptance threshold. Kept for analyst
// visibility only.
type UnverifiedEvent struct {
	Title       string `json:"title"`
	URI         string `json:"uri"`
	Reason      string `json:"reason"`
	SourceGrade string `json:"sourceGrade"` // e.g. "C3"
}

// CrisisReport is one complete structured assessment. Created atomically
// from a single successful model round-trip and immutable thereafter.
type CrisisReport struct {
	ID               string            `json:"id"`
	Country          string            `json:"country"`
	Timestamp        int64             `json:"timestamp"` // epoch milliseconds
	Summary          string            `json:"summary"`
	EscalationLevel  EscalationLevel   `json:"escalationLevel"`
	StrategicInsight string            `json:"strategicInsight"`
	Scores           []IndicatorResult `json:"scores"`
	ArticleSnippet   string            `json:"articleSnippet"`
	Sources          []Source          `json:"sources"`
	UnverifiedEvents []UnverifiedEvent `json:"unverifiedEvents"`
}
