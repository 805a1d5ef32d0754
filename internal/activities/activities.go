// Package activities exposes the pipeline stages as Temporal activities so
// a worker can run each question as a durable workflow.
package activities

import (
	"context"
	"fmt"

	sdkactivity "go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/pipeline"
	"github.com/ahrav/go-quorum/pkg/activity"
)

// Registered activity names.
const (
	SampleAndVoteName = "SampleAndVote"
	ReviewName        = "Review"
	FinalizeName      = "Finalize"
)

// Activities wraps the sampling, review and finalization stages.
type Activities struct {
	activity.BaseActivities
	sampler   *pipeline.Sampler
	reviewer  *pipeline.Reviewer
	finalizer *pipeline.Finalizer
}

// NewActivities creates activities backed by solver's stages.
func NewActivities(base activity.BaseActivities, solver *pipeline.Solver) *Activities {
	return &Activities{
		BaseActivities: base,
		sampler:        solver.Sampler(),
		reviewer:       solver.Reviewer(),
		finalizer:      solver.Finalizer(),
	}
}

// Registry is the registration surface shared by Temporal workers and test
// environments.
type Registry interface {
	RegisterActivityWithOptions(a any, options sdkactivity.RegisterOptions)
}

// Register adds the three stage activities to r under their fixed names.
// Methods are registered individually because the embedded base helpers are
// not valid activities.
func (a *Activities) Register(r Registry) {
	r.RegisterActivityWithOptions(a.SampleAndVote, sdkactivity.RegisterOptions{Name: SampleAndVoteName})
	r.RegisterActivityWithOptions(a.Review, sdkactivity.RegisterOptions{Name: ReviewName})
	r.RegisterActivityWithOptions(a.Finalize, sdkactivity.RegisterOptions{Name: FinalizeName})
}

// SampleAndVote draws solver samples and returns the drafts with their vote.
// Remote failures are absorbed into empty drafts; only invalid input fails.
func (a *Activities) SampleAndVote(ctx context.Context, in domain.SampleInput) (*domain.SampleOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, nonRetryable(SampleAndVoteName, fmt.Errorf("%w: %w", domain.ErrInvalidStageInput, err), "invalid sample input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	a.Log(ctx, "Starting SampleAndVote activity",
		"workflow_id", wfCtx.WorkflowID,
		"domain", in.Domain,
		"samples", in.Samples)

	voted, drafts := a.sampler.SampleAndVote(ctx, in.Domain, in.Question, in.Samples, in.Shots, in.Temperature)
	a.RecordHeartbeat(ctx, len(drafts))

	a.Log(ctx, "SampleAndVote completed",
		"workflow_id", wfCtx.WorkflowID,
		"drafts", len(drafts),
		"voted", voted)

	if drafts == nil {
		drafts = []string{}
	}
	return &domain.SampleOutput{Drafts: drafts, Voted: voted}, nil
}

// Review runs the review stage on a draft.
func (a *Activities) Review(ctx context.Context, in domain.ReviewInput) (string, error) {
	out := a.reviewer.Review(ctx, in.Domain, in.Question, in.Draft)
	a.Log(ctx, "Review completed", "draft", in.Draft, "reviewed", out)
	return out, nil
}

// Finalize runs the finalization stage on a draft.
func (a *Activities) Finalize(ctx context.Context, in domain.FinalizeInput) (string, error) {
	out := a.finalizer.Finalize(ctx, in.Question, in.Draft)
	a.Log(ctx, "Finalize completed", "draft", in.Draft, "final", out)
	return out, nil
}

// nonRetryable wraps an error as a Temporal non-retryable application error.
func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
