package pipeline

import (
	"context"
	"log/slog"

	"github.com/ahrav/go-quorum/internal/answer"
	"github.com/ahrav/go-quorum/internal/prompt"
)

// Finalizer reduces a draft to the minimal literal answer.
type Finalizer struct {
	client Completer
	logger *slog.Logger
}

// NewFinalizer creates a Finalizer.
func NewFinalizer(client Completer, logger *slog.Logger) *Finalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finalizer{client: client, logger: logger}
}

// Finalize returns the model's minimal answer for draft, normalized to one
// line with any leading multiple-choice label removed. An empty draft yields
// "" without a call. A failed call or empty reply yields the cleaned draft.
func (f *Finalizer) Finalize(ctx context.Context, question, draft string) string {
	if draft == "" {
		return ""
	}
	fallback := answer.StripChoiceLabel(answer.Normalize(draft))

	reply, err := f.client.Complete(ctx, prompt.FinalizeSystem, prompt.Finalize(question, draft), 0)
	if err != nil {
		f.logger.WarnContext(ctx, "finalize failed, keeping draft", "error", err)
		return fallback
	}

	final := answer.StripChoiceLabel(answer.Normalize(reply))
	if final == "" {
		f.logger.DebugContext(ctx, "finalize reply was empty, keeping draft")
		return fallback
	}
	return final
}
