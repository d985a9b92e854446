package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/osintlab/crisisdash/internal/framework"
	"github.com/osintlab/crisisdash/internal/llm"
	"github.com/osintlab/crisisdash/internal/model"
	"github.com/osintlab/crisisdash/internal/normalize"
	"github.com/osintlab/crisisdash/internal/prompt"
	"github.com/osintlab/crisisdash/internal/store"
)

// fakeProvider returns canned text and records the requests it saw.
type fakeProvider struct {
	text  string
	err   error
	calls int

	lastReq prompt.Request
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Generate(ctx context.Context, req prompt.Request) (*llm.GenerateResult, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return &llm.GenerateResult{Text: p.text}, nil
}

func (p *fakeProvider) StreamChat(ctx context.Context, system string, history []llm.Message, userText string) (<-chan llm.Chunk, error) {
	return nil, errors.New("not used")
}

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "reports.json")
	cfg.Scan.RequestsPerMinute = 600 // keep limiter waits negligible in tests
	return cfg
}

func reportJSON(t *testing.T, profile string, score float64) string {
	t.Helper()
	names, err := framework.Get(profile)
	if err != nil {
		t.Fatalf("framework lookup: %v", err)
	}

	scores := make([]map[string]interface{}, len(names))
	for i := range names {
		scores[i] = map[string]interface{}{
			"id":                   i + 1,
			"name":                 names[i],
			"score":                score,
			"severity":             1,
			"evidence":             "Routine reporting.",
			"appraisal":            "Stable week.",
			"averageSixMonthScore": 0,
			"historicalTrend":      []float64{0, 0, 0, 0, 0, 0},
		}
	}
	data, err := json.Marshal(map[string]interface{}{
		"summary":          "Quiet reporting window.",
		"escalationLevel":  "Low",
		"strategicInsight": "No change.",
		"scores":           scores,
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return string(data)
}

func sweepJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{
		"incidents":         []interface{}{},
		"overallAssessment": "No qualifying signals.",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return string(data)
}

func TestScan_Success(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: reportJSON(t, "Libya", 0)}
	p := New(cfg, provider, st)

	result, err := p.Scan(context.Background(), "Libya")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Report == nil || result.Report.Country != "Libya" {
		t.Fatalf("Expected Libya report, got %v", result.Report)
	}
	if result.FromCache {
		t.Error("Expected first scan to miss the cache")
	}
	if len(result.Continuity) != 0 {
		t.Errorf("Expected no continuity findings on a cold start, got %v", result.Continuity)
	}

	stored := st.ListAll()
	if len(stored) != 1 || stored[0].ID != result.Report.ID {
		t.Errorf("Expected scan result persisted, store holds %v", stored)
	}
}

func TestScan_UnknownProfile(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{}
	p := New(cfg, provider, st)

	_, err := p.Scan(context.Background(), "Atlantis")
	var upe *framework.UnknownProfileError
	if !errors.As(err, &upe) {
		t.Fatalf("Expected UnknownProfileError, got %T: %v", err, err)
	}
	if provider.calls != 0 {
		t.Errorf("Expected no model call for unknown profile, got %d", provider.calls)
	}
}

func TestScan_MalformedResponseLeavesStoreUntouched(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: "not json at all"}
	p := New(cfg, provider, st)

	_, err := p.Scan(context.Background(), "Libya")
	var malformed *normalize.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedResponseError, got %T: %v", err, err)
	}
	if got := len(st.ListAll()); got != 0 {
		t.Errorf("Expected failed scan to leave store untouched, got %d reports", got)
	}
}

func TestScan_ProviderFailureLeavesStoreUntouched(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{err: errors.New("upstream timeout")}
	p := New(cfg, provider, st)

	if _, err := p.Scan(context.Background(), "Libya"); err == nil {
		t.Fatal("Expected provider failure to surface")
	}
	if got := len(st.ListAll()); got != 0 {
		t.Errorf("Expected store untouched after provider failure, got %d reports", got)
	}
}

func TestScan_SecondScanUsesBaselineAndCache(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: reportJSON(t, "Libya", 0)}
	p := New(cfg, provider, st)

	first, err := p.Scan(context.Background(), "Libya")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(provider.lastReq.System, "Continuity Baseline") {
		t.Error("Expected no baseline block on the first scan")
	}

	second, err := p.Scan(context.Background(), "Libya")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !second.FromCache {
		t.Error("Expected second same-day scan to be served from cache")
	}
	if provider.calls != 1 {
		t.Errorf("Expected exactly 1 model call, got %d", provider.calls)
	}
	if second.Report.ID == first.Report.ID {
		t.Error("Expected a fresh report identity even for a cached response")
	}
	if got := len(st.ListAll()); got != 2 {
		t.Errorf("Expected both scans persisted, got %d", got)
	}
}

func TestScan_NoCacheForcesRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scan.NoCache = true
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: reportJSON(t, "Libya", 0)}
	p := New(cfg, provider, st)

	for i := 0; i < 2; i++ {
		if _, err := p.Scan(context.Background(), "Libya"); err != nil {
			t.Fatalf("Expected no error on scan %d, got %v", i, err)
		}
	}
	if provider.calls != 2 {
		t.Errorf("Expected 2 model calls with caching disabled, got %d", provider.calls)
	}
}

func TestScan_ContinuityFindingsReported(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scan.NoCache = true
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: reportJSON(t, "Libya", 0)}
	p := New(cfg, provider, st)

	if _, err := p.Scan(context.Background(), "Libya"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Second scan jumps every indicator by 3 with only boilerplate appraisal.
	jumped := reportJSON(t, "Libya", 3)
	jumped = strings.ReplaceAll(jumped, "Stable week.", prompt.NoEvidenceText)
	jumped = strings.ReplaceAll(jumped, "Routine reporting.", prompt.NoEvidenceText)
	provider.text = jumped

	result, err := p.Scan(context.Background(), "Libya")
	if err != nil {
		t.Fatalf("Expected flagged report to still be accepted, got %v", err)
	}
	names, _ := framework.Get("Libya")
	if len(result.Continuity) != len(names) {
		t.Errorf("Expected all %d indicators flagged, got %d", len(names), len(result.Continuity))
	}
	if got := len(st.ListAll()); got != 2 {
		t.Errorf("Expected flagged report persisted, got %d stored", got)
	}
}

func TestScan_InFlightGate(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	p := New(cfg, &fakeProvider{text: reportJSON(t, "Libya", 0)}, st)

	p.inflight.Store(true)
	if _, err := p.Scan(context.Background(), "Libya"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("Expected ErrInFlight, got %v", err)
	}
	if _, err := p.Sweep(context.Background(), "Libya"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("Expected ErrInFlight for sweep, got %v", err)
	}

	p.inflight.Store(false)
	if _, err := p.Scan(context.Background(), "Libya"); err != nil {
		t.Fatalf("Expected scan to proceed after gate release, got %v", err)
	}
}

func TestSweep_Success(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: sweepJSON(t)}
	p := New(cfg, provider, st)

	analysis, err := p.Sweep(context.Background(), "Haiti")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if analysis.Country != "Haiti" {
		t.Errorf("Expected Haiti analysis, got %q", analysis.Country)
	}
	if len(analysis.Incidents) != 0 {
		t.Errorf("Expected quiet sweep, got %d incidents", len(analysis.Incidents))
	}

	stored := st.ListTactical()
	if len(stored) != 1 || stored[0].ID != analysis.ID {
		t.Errorf("Expected sweep persisted, store holds %v", stored)
	}
}

func TestSweep_NeverCached(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: sweepJSON(t)}
	p := New(cfg, provider, st)

	for i := 0; i < 2; i++ {
		if _, err := p.Sweep(context.Background(), "Haiti"); err != nil {
			t.Fatalf("Expected no error on sweep %d, got %v", i, err)
		}
	}
	if provider.calls != 2 {
		t.Errorf("Expected every sweep to be a fresh round-trip, got %d calls", provider.calls)
	}
}

func TestSweep_MalformedResponseLeavesStoreUntouched(t *testing.T) {
	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	provider := &fakeProvider{text: `{"incidents": []}`} // missing overallAssessment
	p := New(cfg, provider, st)

	if _, err := p.Sweep(context.Background(), "Haiti"); err == nil {
		t.Fatal("Expected malformed sweep to fail")
	}
	if got := len(st.ListTactical()); got != 0 {
		t.Errorf("Expected store untouched, got %d analyses", got)
	}
}

func TestScan_DeterministicTimestamp(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	orig := nowFunc
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = orig }()

	cfg := testConfig(t)
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	p := New(cfg, &fakeProvider{text: reportJSON(t, "Libya", 0)}, st)

	result, err := p.Scan(context.Background(), "Libya")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Report.Timestamp != fixed.UnixMilli() {
		t.Errorf("Expected timestamp %d, got %d", fixed.UnixMilli(), result.Report.Timestamp)
	}
}
