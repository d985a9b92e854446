// Package store persists report history as a single versioned JSON file,
// newest-first. Reads happen once at open; every append rewrites the file
// atomically (temp file + rename).
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/osintlab/crisisdash/internal/model"
)

// schemaVersion tags the persisted envelope so field additions across
// releases stay loadable. An unknown version degrades to an empty store.
const schemaVersion = 1

type envelope struct {
	Version  int                       `json:"version"`
	Reports  []*model.CrisisReport     `json:"reports"`
	Tactical []*model.TacticalAnalysis `json:"tactical"`
}

// Store is the durable, ordered history of crisis reports and tactical
// analyses. Append is the only mutation; entries are never edited in place.
type Store struct {
	path       string
	maxHistory int

	mu  sync.Mutex
	env envelope
}

// Open loads the store at path. A missing, corrupt, or unreadable file
// degrades to an empty store — local history is a cache, repaired by
// discarding, never fatal.
func Open(path string, maxHistory int) *Store {
	s := &Store{path: path, maxHistory: maxHistory}
	s.env.Version = schemaVersion

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Version != schemaVersion {
		return s
	}
	s.env = env
	return s
}

// Append inserts a report at the head and persists. On a persist failure the
// in-memory insert is rolled back so a failed append leaves no trace.
func (s *Store) Append(r *model.CrisisReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.env.Reports
	s.env.Reports = prepend(prev, r, s.maxHistory)
	if err := s.persist(); err != nil {
		s.env.Reports = prev
		return err
	}
	return nil
}

// AppendTactical mirrors Append for sweep results.
func (s *Store) AppendTactical(a *model.TacticalAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.env.Tactical
	s.env.Tactical = prepend(prev, a, s.maxHistory)
	if err := s.persist(); err != nil {
		s.env.Tactical = prev
		return err
	}
	return nil
}

// ListAll returns all reports, newest-first. The slice is a copy; the
// reports themselves are shared and must be treated as immutable.
func (s *Store) ListAll() []*model.CrisisReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.CrisisReport, len(s.env.Reports))
	copy(out, s.env.Reports)
	return out
}

// ListTactical returns all tactical analyses, newest-first.
func (s *Store) ListTactical() []*model.TacticalAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.TacticalAnalysis, len(s.env.Tactical))
	copy(out, s.env.Tactical)
	return out
}

// FindLatestForProfile returns the most recent report for a profile, used as
// the baseline for the next scan. Nil when no prior report exists.
func (s *Store) FindLatestForProfile(profile string) *model.CrisisReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.env.Reports {
		if r.Country == profile {
			return r
		}
	}
	return nil
}

// Get returns the report with the given id, or nil.
func (s *Store) Get(id string) *model.CrisisReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.env.Reports {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// GetTactical returns the tactical analysis with the given id, or nil.
func (s *Store) GetTactical(id string) *model.TacticalAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.env.Tactical {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// persist writes the envelope atomically. Callers hold s.mu.
func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := json.MarshalIndent(&s.env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".reports-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

func prepend[T any](list []T, head T, max int) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, head)
	out = append(out, list...)
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}
