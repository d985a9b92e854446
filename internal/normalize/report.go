// Package normalize turns raw external model payloads into well-formed
// internal aggregates. The external producer is non-deterministic and
// untrusted: every field is treated as adversarial input and validated
// explicitly, regardless of what schema the request declared.
package normalize

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osintlab/crisisdash/internal/model"
)

// fenceRe strips a markdown code fence some models wrap around JSON output.
var fenceRe = regexp.MustCompile("(?s)^(?:`{3})[^\\n]*\\n(.*?)(?:`{3})\\s*$")

type rawReport struct {
	Summary          *string                 `json:"summary"`
	EscalationLevel  *string                 `json:"escalationLevel"`
	StrategicInsight *string                 `json:"strategicInsight"`
	Scores           []model.IndicatorResult `json:"scores"`
	KeySources       []model.Source          `json:"keySources"`
	UnverifiedEvents []model.UnverifiedEvent `json:"unverifiedEvents"`
}

// Report validates and normalizes a raw structured-report payload into an
// immutable CrisisReport. citations are out-of-band grounding references
// returned alongside the model response; they are merged into the source
// list behind any explicitly declared keySources. Pure transform: the caller
// owns persistence.
func Report(raw []byte, citations []model.Source, profile string, names []string, now time.Time) (*model.CrisisReport, error) {
	var rr rawReport
	if err := json.Unmarshal(stripFences(raw), &rr); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}

	switch {
	case rr.Summary == nil:
		return nil, &MalformedResponseError{Reason: "missing required field summary"}
	case rr.EscalationLevel == nil:
		return nil, &MalformedResponseError{Reason: "missing required field escalationLevel"}
	case rr.StrategicInsight == nil:
		return nil, &MalformedResponseError{Reason: "missing required field strategicInsight"}
	case rr.Scores == nil:
		return nil, &MalformedResponseError{Reason: "missing required field scores"}
	}

	level := model.EscalationLevel(*rr.EscalationLevel)
	if !level.Valid() {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid escalationLevel %q", *rr.EscalationLevel)}
	}

	scores, err := normalizeScores(rr.Scores, names)
	if err != nil {
		return nil, err
	}

	windowStart := now.AddDate(0, 0, -7)
	report := &model.CrisisReport{
		ID:               NewID(),
		Country:          profile,
		Timestamp:        now.UnixMilli(),
		Summary:          *rr.Summary,
		EscalationLevel:  level,
		StrategicInsight: *rr.StrategicInsight,
		Scores:           scores,
		ArticleSnippet: fmt.Sprintf("OSINT Synthesis // %s - %s // Operational Briefing Format",
			windowStart.Format("2 Jan 2006"), now.Format("2 Jan 2006")),
		Sources:          mergeSources(rr.KeySources, citations),
		UnverifiedEvents: rr.UnverifiedEvents,
	}
	if report.UnverifiedEvents == nil {
		report.UnverifiedEvents = []model.UnverifiedEvent{}
	}
	return report, nil
}

// normalizeScores enforces the framework invariant: exactly len(names)
// entries whose ids form the set 1..N, returned in id order with names
// rewritten to the registry entry at each position.
func normalizeScores(scores []model.IndicatorResult, names []string) ([]model.IndicatorResult, error) {
	n := len(names)
	if len(scores) != n {
		return nil, &IndicatorCountMismatchError{Want: n, Got: len(scores)}
	}

	ordered := make([]model.IndicatorResult, n)
	seen := make([]bool, n)
	for _, s := range scores {
		if s.ID < 1 || s.ID > n {
			return nil, &IndicatorCountMismatchError{Want: n, Got: len(scores),
				Detail: fmt.Sprintf("id %d outside 1..%d", s.ID, n)}
		}
		if seen[s.ID-1] {
			return nil, &IndicatorCountMismatchError{Want: n, Got: len(scores),
				Detail: fmt.Sprintf("duplicate id %d", s.ID)}
		}
		seen[s.ID-1] = true

		if err := validateScore(&s, n); err != nil {
			return nil, err
		}
		// Position is semantic identity; the registry name is authoritative.
		s.Name = names[s.ID-1]
		ordered[s.ID-1] = s
	}
	return ordered, nil
}

func validateScore(s *model.IndicatorResult, n int) error {
	field := func(name string) string { return fmt.Sprintf("scores[id=%d].%s", s.ID, name) }

	if s.Score < -5 || s.Score > 5 {
		return &OutOfRangeValueError{Field: field("score"), Value: s.Score, Min: -5, Max: 5}
	}
	if s.Severity < 1 || s.Severity > 5 {
		return &OutOfRangeValueError{Field: field("severity"), Value: s.Severity, Min: 1, Max: 5}
	}
	if s.AverageSixMonthScore < -5 || s.AverageSixMonthScore > 5 {
		return &OutOfRangeValueError{Field: field("averageSixMonthScore"), Value: s.AverageSixMonthScore, Min: -5, Max: 5}
	}
	if s.Credibility != 0 && (s.Credibility < 1 || s.Credibility > 6) {
		return &OutOfRangeValueError{Field: field("credibility"), Value: float64(s.Credibility), Min: 1, Max: 6}
	}
	if s.ConfidenceLevel < 0 || s.ConfidenceLevel > 100 {
		return &OutOfRangeValueError{Field: field("confidenceLevel"), Value: float64(s.ConfidenceLevel), Min: 0, Max: 100}
	}

	// A missing trend is defaulted from the 6-month average; a present trend
	// must be exactly 6 in-range monthly values.
	if len(s.HistoricalTrend) == 0 {
		s.HistoricalTrend = make([]float64, 6)
		for i := range s.HistoricalTrend {
			s.HistoricalTrend[i] = s.AverageSixMonthScore
		}
	} else if len(s.HistoricalTrend) != 6 {
		return &MalformedResponseError{Reason: fmt.Sprintf("%s has %d entries, want 6", field("historicalTrend"), len(s.HistoricalTrend))}
	}
	for i, v := range s.HistoricalTrend {
		if v < -5 || v > 5 {
			return &OutOfRangeValueError{Field: fmt.Sprintf("%s[%d]", field("historicalTrend"), i), Value: v, Min: -5, Max: 5}
		}
	}
	return nil
}

// mergeSources combines declared key sources with grounding citations,
// deduplicated by URI. First occurrence wins for title, rating, and type, so
// declared sources (which carry grading) take precedence over bare citations.
func mergeSources(declared, citations []model.Source) []model.Source {
	merged := make([]model.Source, 0, len(declared)+len(citations))
	seen := make(map[string]bool)
	for _, s := range append(append([]model.Source{}, declared...), citations...) {
		if s.URI == "" || seen[s.URI] {
			continue
		}
		seen[s.URI] = true
		if s.Title == "" {
			s.Title = titleFromURI(s.URI)
		}
		merged = append(merged, s)
	}
	return merged
}

func titleFromURI(uri string) string {
	if u, err := url.Parse(uri); err == nil && u.Host != "" {
		return u.Host
	}
	return uri
}

func stripFences(raw []byte) []byte {
	trimmed := strings.TrimSpace(string(raw))
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		return []byte(strings.TrimSpace(m[1]))
	}
	return []byte(trimmed)
}

// NewID returns a short unique report token.
func NewID() string {
	compact := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(compact[:9])
}
