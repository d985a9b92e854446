package model

import (
	"encoding/json"
	"testing"
)

func TestEscalationLevel_Valid(t *testing.T) {
	for _, l := range []EscalationLevel{EscalationLow, EscalationMedium, EscalationHigh, EscalationCritical} {
		if !l.Valid() {
			t.Errorf("Expected %q to be valid", l)
		}
	}
	for _, l := range []EscalationLevel{"", "low", "Apocalyptic"} {
		if l.Valid() {
			t.Errorf("Expected %q to be invalid", l)
		}
	}
}

func TestIncidentCategory_Valid(t *testing.T) {
	for _, c := range []IncidentCategory{
		IncidentSocialUnrest, IncidentViolent, IncidentCoup,
		IncidentLiveCombat, IncidentHumanitarian, IncidentOther,
	} {
		if !c.Valid() {
			t.Errorf("Expected %q to be valid", c)
		}
	}
	if IncidentCategory("Weather").Valid() {
		t.Error("Expected 'Weather' to be invalid")
	}
}

func TestProactiveIntent_Valid(t *testing.T) {
	if !IntentReporting.Valid() || !IntentPlanning.Valid() {
		t.Error("Expected defined intents to be valid")
	}
	if ProactiveIntent("Guessing").Valid() {
		t.Error("Expected 'Guessing' to be invalid")
	}
}

func TestIndicatorResult_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(IndicatorResult{
		ID: 1, Name: "n", Score: -2, Severity: 3,
		AverageSixMonthScore: 0.5,
		HistoricalTrend:      []float64{0, 0, 0, 0, 0, 0},
		ConfidenceLevel:      80,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"id", "name", "score", "severity", "averageSixMonthScore", "historicalTrend", "confidenceLevel"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("Expected wire field %q, got keys %v", want, fields)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("Expected gemini default provider, got %q", cfg.LLM.Provider)
	}
	if cfg.Store.MaxHistory != 200 {
		t.Errorf("Expected default retention 200, got %d", cfg.Store.MaxHistory)
	}
	if cfg.Scan.RequestsPerMinute <= 0 {
		t.Error("Expected a positive default request rate")
	}
	if cfg.Store.Path == "" {
		t.Error("Expected a default store path")
	}
}
