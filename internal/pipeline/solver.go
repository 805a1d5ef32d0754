// Package pipeline answers test questions with a fixed sequence of model
// calls: few-shot sampling with a majority vote, one review pass, and one
// finalization pass. Every remote failure degrades to an empty or unchanged
// draft; nothing here returns an error to the caller.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/llm/configuration"
	"github.com/ahrav/go-quorum/internal/llm/ratelimit"
	"github.com/ahrav/go-quorum/internal/prompt"
)

// Sample counts per question.
const (
	MathSamples    = 3
	DefaultSamples = 2
)

// SamplesFor returns the number of solver samples for a domain tag.
func SamplesFor(tag string) int {
	if (domain.Query{Domain: tag}).IsMath() {
		return MathSamples
	}
	return DefaultSamples
}

// Config holds the pipeline knobs.
type Config struct {
	CallBudget        int
	SamplePause       time.Duration
	SampleTemperature float64
	Shots             int
}

// ConfigFrom extracts the pipeline settings from the process configuration.
func ConfigFrom(cfg *configuration.Config) Config {
	return Config{
		CallBudget:        cfg.CallBudget,
		SamplePause:       cfg.SamplePause,
		SampleTemperature: cfg.SampleTemperature,
		Shots:             cfg.Shots,
	}
}

// DefaultConfig mirrors configuration.DefaultConfig.
func DefaultConfig() Config {
	return ConfigFrom(configuration.DefaultConfig())
}

// Solver runs the full pipeline for one query at a time.
type Solver struct {
	sampler   *Sampler
	reviewer  *Reviewer
	finalizer *Finalizer
	cfg       Config
	logger    *slog.Logger
}

// NewSolver wires the three stages around client. source supplies few-shot
// examples; it may be nil.
func NewSolver(client Completer, source prompt.ExampleSource, cfg Config, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "pipeline")

	return &Solver{
		sampler:   NewSampler(client, prompt.NewBuilder(source), ratelimit.NewPacer(cfg.SamplePause), cfg.CallBudget, logger),
		reviewer:  NewReviewer(client, logger),
		finalizer: NewFinalizer(client, logger),
		cfg:       cfg,
		logger:    logger,
	}
}

// Sampler returns the sampling stage.
func (s *Solver) Sampler() *Sampler { return s.sampler }

// Reviewer returns the review stage.
func (s *Solver) Reviewer() *Reviewer { return s.reviewer }

// Finalizer returns the finalization stage.
func (s *Solver) Finalizer() *Finalizer { return s.finalizer }

// Config returns the solver's settings.
func (s *Solver) Config() Config { return s.cfg }

// Solve answers q. The result is always a single line and may be empty.
func (s *Solver) Solve(ctx context.Context, q domain.Query) string {
	return s.SolveDetailed(ctx, q).Output
}

// SolveDetailed answers q and records every intermediate answer.
func (s *Solver) SolveDetailed(ctx context.Context, q domain.Query) domain.SolveResult {
	voted, drafts := s.sampler.SampleAndVote(ctx, q.Domain, q.Input, SamplesFor(q.Domain), s.cfg.Shots, s.cfg.SampleTemperature)
	reviewed := s.reviewer.Review(ctx, q.Domain, q.Input, voted)
	final := s.finalizer.Finalize(ctx, q.Input, reviewed)

	s.logger.DebugContext(ctx, "solved",
		"domain", q.Domain,
		"voted", voted,
		"reviewed", reviewed,
		"final", final)

	return domain.SolveResult{
		Drafts:   drafts,
		Voted:    voted,
		Reviewed: reviewed,
		Output:   final,
	}
}

// SolveAll answers queries in order. Once ctx is done the remaining answers
// are left empty.
func (s *Solver) SolveAll(ctx context.Context, queries []domain.Query) []string {
	out := make([]string, len(queries))
	for i, q := range queries {
		if ctx.Err() != nil {
			s.logger.WarnContext(ctx, "run cancelled", "answered", i, "total", len(queries))
			break
		}
		out[i] = s.Solve(ctx, q)
		s.logger.InfoContext(ctx, "answered", "index", i+1, "total", len(queries), "domain", q.Domain)
	}
	return out
}
