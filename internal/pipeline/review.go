package pipeline

import (
	"context"
	"log/slog"

	"github.com/ahrav/go-quorum/internal/answer"
	"github.com/ahrav/go-quorum/internal/prompt"
)

// Reviewer asks the model to accept or revise a draft answer.
type Reviewer struct {
	client Completer
	logger *slog.Logger
}

// NewReviewer creates a Reviewer.
func NewReviewer(client Completer, logger *slog.Logger) *Reviewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reviewer{client: client, logger: logger}
}

// Review returns the answer following the reviewer's ACCEPT: or REVISE:
// verdict. An empty draft is returned without a call. A failed call, a
// reply with no verdict, or a verdict with nothing after it yields the
// normalized draft.
func (r *Reviewer) Review(ctx context.Context, tag, question, draft string) string {
	if draft == "" {
		return draft
	}
	fallback := answer.Normalize(draft)

	reply, err := r.client.Complete(ctx, prompt.ReviewSystem, prompt.Review(tag, question, draft), 0)
	if err != nil {
		r.logger.WarnContext(ctx, "review failed, keeping draft", "error", err)
		return fallback
	}

	verdict, revised := answer.ParseVerdict(reply)
	switch {
	case verdict == answer.VerdictNone:
		r.logger.DebugContext(ctx, "review reply had no verdict, keeping draft", "reply", answer.Normalize(reply))
		return fallback
	case revised == "":
		r.logger.DebugContext(ctx, "review verdict was empty, keeping draft", "verdict", verdict)
		return fallback
	}

	r.logger.DebugContext(ctx, "reviewed", "verdict", verdict, "draft", fallback, "answer", revised)
	return revised
}
