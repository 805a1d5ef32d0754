package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-quorum/internal/activities"
	"github.com/ahrav/go-quorum/internal/answer"
	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/pipeline"
)

// SolveWorkflowName is the registered workflow type.
const SolveWorkflowName = "SolveWorkflow"

// SolveWorkflow answers req.Query with SampleAndVote, Review and Finalize.
// Stage failures that reach the workflow degrade the same way the
// in-process pipeline does: a failed review keeps the voted draft and a
// failed finalize keeps the reviewed draft without its choice label.
func SolveWorkflow(ctx workflow.Context, req domain.SolveRequest) (*domain.SolveResult, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "solve.v", workflow.DefaultVersion, currentVersion)

	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			domain.ErrInvalidSolveRequest.Error(),
			"Validation",
			err,
		)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: time.Duration(req.StageTimeoutSeconds) * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)
	logger := workflow.GetLogger(ctx)
	q := req.Query

	var sampled domain.SampleOutput
	err := workflow.ExecuteActivity(ctx, activities.SampleAndVoteName, domain.SampleInput{
		Domain:      q.Domain,
		Question:    q.Input,
		Samples:     pipeline.SamplesFor(q.Domain),
		Shots:       req.Shots,
		Temperature: req.Temperature,
	}).Get(ctx, &sampled)
	if err != nil {
		logger.Warn("sampling failed", "error", err)
		return &domain.SolveResult{Drafts: []string{}}, nil
	}

	result := &domain.SolveResult{Drafts: sampled.Drafts, Voted: sampled.Voted}
	if sampled.Voted == "" {
		return result, nil
	}

	reviewed := sampled.Voted
	if err := workflow.ExecuteActivity(ctx, activities.ReviewName, domain.ReviewInput{
		Domain:   q.Domain,
		Question: q.Input,
		Draft:    sampled.Voted,
	}).Get(ctx, &reviewed); err != nil {
		logger.Warn("review failed, keeping draft", "error", err)
		reviewed = sampled.Voted
	}
	result.Reviewed = reviewed

	final := reviewed
	if err := workflow.ExecuteActivity(ctx, activities.FinalizeName, domain.FinalizeInput{
		Question: q.Input,
		Draft:    reviewed,
	}).Get(ctx, &final); err != nil {
		logger.Warn("finalize failed, keeping draft", "error", err)
		final = answer.StripChoiceLabel(reviewed)
	}
	result.Output = final

	return result, nil
}
