package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ahrav/go-quorum/internal/answer"
	"github.com/ahrav/go-quorum/internal/llm/ratelimit"
	"github.com/ahrav/go-quorum/internal/prompt"
)

// reservedCalls are kept out of the sampling budget for review and finalize.
const reservedCalls = 2

// Sampler draws several solver completions for a question and votes on the
// extracted answers.
type Sampler struct {
	client     Completer
	builder    *prompt.Builder
	pacer      *ratelimit.Pacer
	callBudget int
	logger     *slog.Logger
}

// NewSampler creates a Sampler. A nil pacer disables the pause between samples.
func NewSampler(client Completer, builder *prompt.Builder, pacer *ratelimit.Pacer, callBudget int, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sampler{
		client:     client,
		builder:    builder,
		pacer:      pacer,
		callBudget: callBudget,
		logger:     logger,
	}
}

// ClampSamples bounds samples to [1, callBudget-2].
func ClampSamples(samples, callBudget int) int {
	if limit := callBudget - reservedCalls; samples > limit {
		samples = limit
	}
	if samples < 1 {
		samples = 1
	}
	return samples
}

// SampleAndVote issues the clamped number of solver requests one after
// another, extracts each reply, and returns the majority answer together
// with every draft in request order. Failed calls contribute an empty draft.
// A blank question returns immediately without calling the model.
func (s *Sampler) SampleAndVote(
	ctx context.Context,
	tag, question string,
	samples, kshots int,
	temperature float64,
) (string, []string) {
	if strings.TrimSpace(question) == "" {
		return "", nil
	}

	n := ClampSamples(samples, s.callBudget)
	userPrompt := s.builder.ForQuestion(tag, question, kshots)

	drafts := make([]string, 0, n)
	for i := range n {
		if err := s.pacer.Wait(ctx); err != nil {
			s.logger.WarnContext(ctx, "sampling interrupted", "sample", i, "error", err)
			break
		}

		reply, err := s.client.Complete(ctx, prompt.SolverSystem, userPrompt, temperature)
		if err != nil {
			s.logger.WarnContext(ctx, "sample failed", "sample", i, "error", err)
			drafts = append(drafts, "")
			continue
		}
		drafts = append(drafts, answer.Extract(reply))
	}

	voted := answer.Vote(drafts)
	s.logger.DebugContext(ctx, "samples voted",
		"domain", tag,
		"drafts", drafts,
		"tally", answer.Count(drafts),
		"voted", voted)
	return voted, drafts
}
