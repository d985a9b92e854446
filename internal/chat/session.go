package chat

import (
	"context"
	"sync"

	"github.com/osintlab/crisisdash/internal/llm"
	"github.com/osintlab/crisisdash/internal/model"
)

// ErrorMarker is appended to a model turn whose stream failed mid-flight.
// The turn keeps any partial text so the analyst sees what arrived.
const ErrorMarker = "[ERROR: Secure link interrupted. Retry transmission.]"

// Session is a stateful grounded conversation over one report. History
// accumulates across turns; switching reports requires a fresh session.
// A failed turn is recorded with an error marker and the session stays
// usable — recovery is at turn granularity.
type Session struct {
	provider llm.Provider
	system   string

	mu      sync.Mutex
	history []llm.Message
}

// NewReportSession starts a session grounded in a structured crisis report.
func NewReportSession(p llm.Provider, r *model.CrisisReport) *Session {
	return &Session{provider: p, system: SeedFromReport(r)}
}

// NewTacticalSession starts a session grounded in a tactical sweep result.
func NewTacticalSession(p llm.Provider, a *model.TacticalAnalysis) *Session {
	return &Session{provider: p, system: SeedFromTactical(a)}
}

// Send submits one user turn and returns the response as a stream of text
// chunks. The channel closes exactly once: after the final text chunk on
// success, or after a single terminal error chunk on failure. Either way
// the turn is committed to history before the channel closes. If ctx is
// cancelled while the consumer has stopped receiving, the turn is committed
// with the error marker and the channel closes without further sends.
func (s *Session) Send(ctx context.Context, userText string) (<-chan llm.Chunk, error) {
	s.mu.Lock()
	prior := make([]llm.Message, len(s.history))
	copy(prior, s.history)
	s.mu.Unlock()

	upstream, err := s.provider.StreamChat(ctx, s.system, prior, userText)
	if err != nil {
		return nil, err
	}

	out := make(chan llm.Chunk)
	go func() {
		defer close(out)
		var buf []byte
		for chunk := range upstream {
			if chunk.Err != nil {
				s.commit(userText, markFailed(buf))
				select {
				case out <- chunk:
				case <-ctx.Done():
				}
				return
			}
			buf = append(buf, chunk.Text...)
			select {
			case out <- chunk:
			case <-ctx.Done():
				s.commit(userText, markFailed(buf))
				return
			}
		}
		s.commit(userText, string(buf))
	}()
	return out, nil
}

// markFailed renders a failed turn's committed text: any partial output,
// then the error marker.
func markFailed(buf []byte) string {
	partial := string(buf)
	if partial != "" {
		partial += "\n"
	}
	return partial + ErrorMarker
}

// History returns a copy of the conversation so far.
func (s *Session) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) commit(userText, modelText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history,
		llm.Message{Role: llm.RoleUser, Text: userText},
		llm.Message{Role: llm.RoleModel, Text: modelText},
	)
}
