package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/osintlab/crisisdash/internal/llm"
	"github.com/osintlab/crisisdash/internal/model"
	"github.com/osintlab/crisisdash/internal/prompt"
)

// scriptedProvider streams a fixed chunk script and records what it was asked.
type scriptedProvider struct {
	chunks []llm.Chunk

	lastSystem  string
	lastHistory []llm.Message
	lastUser    string
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Generate(ctx context.Context, req prompt.Request) (*llm.GenerateResult, error) {
	return nil, errors.New("not used")
}

func (p *scriptedProvider) StreamChat(ctx context.Context, system string, history []llm.Message, userText string) (<-chan llm.Chunk, error) {
	p.lastSystem = system
	p.lastHistory = history
	p.lastUser = userText

	out := make(chan llm.Chunk, len(p.chunks))
	for _, c := range p.chunks {
		out <- c
		if c.Err != nil {
			break
		}
	}
	close(out)
	return out, nil
}

func testReport() *model.CrisisReport {
	return &model.CrisisReport{
		ID:               "R1",
		Country:          "Libya",
		Summary:          "Quiet reporting window.",
		EscalationLevel:  model.EscalationMedium,
		StrategicInsight: "Watch the central bank standoff.",
		Scores: []model.IndicatorResult{
			{ID: 1, Name: "Security Failure", Score: -2, Severity: 3, Appraisal: "Militia checkpoints expanded."},
		},
	}
}

func drain(t *testing.T, ch <-chan llm.Chunk) (string, error) {
	t.Helper()
	var sb strings.Builder
	for c := range ch {
		if c.Err != nil {
			return sb.String(), c.Err
		}
		sb.WriteString(c.Text)
	}
	return sb.String(), nil
}

func TestSession_StreamsAndCommitsHistory(t *testing.T) {
	p := &scriptedProvider{chunks: []llm.Chunk{{Text: "The situation "}, {Text: "is contained."}}}
	s := NewReportSession(p, testReport())

	ch, err := s.Send(context.Background(), "status?")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	text, streamErr := drain(t, ch)
	if streamErr != nil {
		t.Fatalf("Expected clean stream, got %v", streamErr)
	}
	if text != "The situation is contained." {
		t.Errorf("Expected accumulated stream text, got %q", text)
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("Expected 2 history turns, got %d", len(history))
	}
	if history[0].Role != llm.RoleUser || history[0].Text != "status?" {
		t.Errorf("Unexpected user turn: %+v", history[0])
	}
	if history[1].Role != llm.RoleModel || history[1].Text != "The situation is contained." {
		t.Errorf("Unexpected model turn: %+v", history[1])
	}
}

func TestSession_HistoryCarriesForward(t *testing.T) {
	p := &scriptedProvider{chunks: []llm.Chunk{{Text: "ack"}}}
	s := NewReportSession(p, testReport())

	ch, err := s.Send(context.Background(), "first")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := drain(t, ch); err != nil {
		t.Fatalf("Expected clean stream, got %v", err)
	}

	ch, err = s.Send(context.Background(), "second")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := drain(t, ch); err != nil {
		t.Fatalf("Expected clean stream, got %v", err)
	}

	// The second call must have seen the first exchange as prior history.
	if len(p.lastHistory) != 2 {
		t.Fatalf("Expected 2 prior turns on second send, got %d", len(p.lastHistory))
	}
	if p.lastHistory[0].Text != "first" || p.lastHistory[1].Text != "ack" {
		t.Errorf("Unexpected prior history: %+v", p.lastHistory)
	}
	if p.lastUser != "second" {
		t.Errorf("Expected user text 'second', got %q", p.lastUser)
	}
}

func TestSession_StreamFailureCommitsMarkedTurn(t *testing.T) {
	p := &scriptedProvider{chunks: []llm.Chunk{
		{Text: "Partial assess"},
		{Err: errors.New("link reset")},
	}}
	s := NewReportSession(p, testReport())

	ch, err := s.Send(context.Background(), "status?")
	if err != nil {
		t.Fatalf("Expected no error on send, got %v", err)
	}
	partial, streamErr := drain(t, ch)
	if streamErr == nil {
		t.Fatal("Expected terminal error chunk")
	}
	if partial != "Partial assess" {
		t.Errorf("Expected partial text before failure, got %q", partial)
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("Expected the failed turn committed as 2 entries, got %d", len(history))
	}
	modelTurn := history[1].Text
	if !strings.Contains(modelTurn, "Partial assess") {
		t.Errorf("Expected partial text preserved in history, got %q", modelTurn)
	}
	if !strings.Contains(modelTurn, ErrorMarker) {
		t.Errorf("Expected error marker in failed turn, got %q", modelTurn)
	}

	// Session stays usable after the failure.
	p.chunks = []llm.Chunk{{Text: "recovered"}}
	ch, err = s.Send(context.Background(), "retry")
	if err != nil {
		t.Fatalf("Expected session to remain usable, got %v", err)
	}
	if text, err := drain(t, ch); err != nil || text != "recovered" {
		t.Errorf("Expected clean recovery turn, got %q err %v", text, err)
	}
	if got := len(s.History()); got != 4 {
		t.Errorf("Expected 4 history entries after recovery, got %d", got)
	}
}

// channelProvider streams whatever the test pushes onto its channel.
type channelProvider struct {
	ch chan llm.Chunk
}

func (p *channelProvider) Name() string { return "channel" }

func (p *channelProvider) Generate(ctx context.Context, req prompt.Request) (*llm.GenerateResult, error) {
	return nil, errors.New("not used")
}

func (p *channelProvider) StreamChat(ctx context.Context, system string, history []llm.Message, userText string) (<-chan llm.Chunk, error) {
	return p.ch, nil
}

func TestSession_AbandonedStreamCommitsMarkedTurn(t *testing.T) {
	up := make(chan llm.Chunk)
	defer close(up)
	s := NewReportSession(&channelProvider{ch: up}, testReport())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, err := s.Send(ctx, "status?")
	if err != nil {
		t.Fatalf("Expected no error on send, got %v", err)
	}

	up <- llm.Chunk{Text: "Partial assess"}
	first := <-out
	if first.Text != "Partial assess" {
		t.Fatalf("Expected first chunk forwarded, got %+v", first)
	}

	// The consumer walks away: cancel, stop receiving, push one more chunk.
	// The relay must not block on the forwarding send.
	cancel()
	up <- llm.Chunk{Text: " and more"}

	deadline := time.After(2 * time.Second)
	for {
		if h := s.History(); len(h) == 2 {
			if h[0].Role != llm.RoleUser || h[0].Text != "status?" {
				t.Errorf("Unexpected user turn: %+v", h[0])
			}
			if !strings.Contains(h[1].Text, "Partial assess") {
				t.Errorf("Expected partial text preserved, got %q", h[1].Text)
			}
			if !strings.Contains(h[1].Text, ErrorMarker) {
				t.Errorf("Expected error marker on abandoned turn, got %q", h[1].Text)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("Timed out waiting for abandoned turn to commit")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSession_ProviderRefusalSurfacesImmediately(t *testing.T) {
	refusing := &refusingProvider{}
	s := NewReportSession(refusing, testReport())

	if _, err := s.Send(context.Background(), "hello"); err == nil {
		t.Fatal("Expected error when provider refuses the stream")
	}
	if got := len(s.History()); got != 0 {
		t.Errorf("Expected no history for a turn that never started, got %d", got)
	}
}

type refusingProvider struct{}

func (p *refusingProvider) Name() string { return "refusing" }
func (p *refusingProvider) Generate(ctx context.Context, req prompt.Request) (*llm.GenerateResult, error) {
	return nil, errors.New("refused")
}
func (p *refusingProvider) StreamChat(ctx context.Context, system string, history []llm.Message, userText string) (<-chan llm.Chunk, error) {
	return nil, errors.New("refused")
}

func TestSeedFromReport(t *testing.T) {
	seed := SeedFromReport(testReport())

	for _, phrase := range []string{
		"Libya",
		"Quiet reporting window.",
		"ESCALATION LEVEL: Medium",
		"Watch the central bank standoff.",
		"1. Security Failure",
		"Militia checkpoints expanded.",
		"Answer ONLY from the intelligence data",
	} {
		if !strings.Contains(seed, phrase) {
			t.Errorf("Expected seed to contain %q", phrase)
		}
	}
}

func TestSeedFromTactical(t *testing.T) {
	analysis := &model.TacticalAnalysis{
		ID:      "TACTICAL-AB12CD",
		Country: "Haiti",
		Incidents: []model.TacticalIncident{
			{
				Category:        model.IncidentSocialUnrest,
				Summary:         "March toward the palace.",
				Coordinates:     model.Coordinates{Lat: 18.5392, Lng: -72.3365, Landmark: "Champ de Mars"},
				Intensity:       4,
				ProactiveIntent: model.IntentReporting,
				EvidenceSnippet: "Crowd estimates around two thousand.",
			},
		},
		OverallAssessment: "Organized but non-violent so far.",
	}

	seed := SeedFromTactical(analysis)
	for _, phrase := range []string{
		"Haiti",
		"Organized but non-violent so far.",
		"Social Unrest",
		"Champ de Mars",
		"Crowd estimates around two thousand.",
	} {
		if !strings.Contains(seed, phrase) {
			t.Errorf("Expected seed to contain %q", phrase)
		}
	}
}

func TestSeedFromTactical_EmptySweep(t *testing.T) {
	analysis := &model.TacticalAnalysis{
		Country:           "Haiti",
		Incidents:         []model.TacticalIncident{},
		OverallAssessment: "Quiet.",
	}
	seed := SeedFromTactical(analysis)
	if !strings.Contains(seed, "none detected") {
		t.Errorf("Expected empty-sweep marker in seed, got %q", seed)
	}
}
