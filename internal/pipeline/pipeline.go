// Package pipeline orchestrates the report lifecycle: baseline lookup,
// request construction, the external model round-trip, normalization, the
// continuity check, and the append to the store.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/osintlab/crisisdash/internal/framework"
	"github.com/osintlab/crisisdash/internal/llm"
	"github.com/osintlab/crisisdash/internal/model"
	"github.com/osintlab/crisisdash/internal/normalize"
	"github.com/osintlab/crisisdash/internal/prompt"
	"github.com/osintlab/crisisdash/internal/store"
)

// ErrInFlight is returned when a scan or sweep is requested while another is
// still running. One model round-trip at a time.
var ErrInFlight = errors.New("pipeline: a scan is already in flight")

// nowFunc is the clock, injectable for tests.
var nowFunc = time.Now

// ScanResult is the outcome of one successful structured scan.
type ScanResult struct {
	Report *model.CrisisReport

	// Continuity flags large uncatalyzed swings versus the baseline.
	// Advisory only; a flagged report is stored regardless.
	Continuity []normalize.ContinuityFinding

	// FromCache is true when the model round-trip was served from cache.
	FromCache bool
}

// Pipeline wires the provider, store, rate limiter, and scan cache.
type Pipeline struct {
	cfg      *model.Config
	provider llm.Provider
	store    *store.Store
	cache    *gocache.Cache
	limiter  *rate.Limiter
	inflight atomic.Bool
}

// New creates a pipeline.
func New(cfg *model.Config, provider llm.Provider, st *store.Store) *Pipeline {
	rpm := cfg.Scan.RequestsPerMinute
	if rpm <= 0 {
		rpm = 6
	}
	return &Pipeline{
		cfg:      cfg,
		provider: provider,
		store:    st,
		cache:    gocache.New(cfg.Scan.CacheTTL, 10*time.Minute),
		limiter:  rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

// Scan runs one structured report cycle for a profile. The most recent
// stored report for the profile seeds the continuity baseline. A failed
// round-trip or failed validation leaves the store untouched.
func (p *Pipeline) Scan(ctx context.Context, profile string) (*ScanResult, error) {
	if !p.inflight.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer p.inflight.Store(false)

	names, err := framework.Get(profile)
	if err != nil {
		return nil, err
	}
	now := nowFunc()
	baseline := p.store.FindLatestForProfile(profile)

	req, err := prompt.BuildReportRequest(profile, baseline, now)
	if err != nil {
		return nil, err
	}

	gen, fromCache, err := p.generate(ctx, "scan:"+profile+":"+now.Format("2006-01-02"), req)
	if err != nil {
		return nil, err
	}

	report, err := normalize.Report([]byte(gen.Text), citationSources(gen.Citations), profile, names, now)
	if err != nil {
		return nil, err
	}
	findings := normalize.ContinuityFindings(baseline, report)

	if err := p.store.Append(report); err != nil {
		return nil, fmt.Errorf("pipeline: persist report: %w", err)
	}
	return &ScanResult{Report: report, Continuity: findings, FromCache: fromCache}, nil
}

// Sweep runs one tactical incident sweep. Sweeps are real-time by nature and
// never served from cache; each one is an independent round-trip.
func (p *Pipeline) Sweep(ctx context.Context, country string) (*model.TacticalAnalysis, error) {
	if !p.inflight.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer p.inflight.Store(false)

	now := nowFunc()
	req := prompt.BuildSweepRequest(country, now)

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	gen, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	analysis, err := normalize.Tactical([]byte(gen.Text), country, now)
	if err != nil {
		return nil, err
	}
	if err := p.store.AppendTactical(analysis); err != nil {
		return nil, fmt.Errorf("pipeline: persist tactical analysis: %w", err)
	}
	return analysis, nil
}

// generate serves a model round-trip, consulting the day-scoped cache so a
// repeated scan of the same profile within the TTL reuses the response.
func (p *Pipeline) generate(ctx context.Context, key string, req prompt.Request) (*llm.GenerateResult, bool, error) {
	if !p.cfg.Scan.NoCache {
		if cached, found := p.cache.Get(key); found {
			return cached.(*llm.GenerateResult), true, nil
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, false, err
	}
	gen, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, false, err
	}

	if !p.cfg.Scan.NoCache {
		p.cache.Set(key, gen, gocache.DefaultExpiration)
	}
	return gen, false, nil
}

func citationSources(citations []llm.Citation) []model.Source {
	out := make([]model.Source, 0, len(citations))
	for _, c := range citations {
		out = append(out, model.Source{Title: c.Title, URI: c.URI})
	}
	return out
}
