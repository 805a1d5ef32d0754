package domain

import "fmt"

// SolveRequest is the input of a durable solve workflow.
type SolveRequest struct {
	// Query is the test item to answer.
	Query Query `json:"query" validate:"required"`

	// StageTimeoutSeconds bounds each pipeline stage (sampling, review, finalize).
	// Sampling issues several remote calls, so this must cover all of them.
	StageTimeoutSeconds int `json:"stage_timeout_seconds" validate:"min=1,max=3600"`

	// Shots is the number of few-shot examples per solver prompt.
	Shots int `json:"shots" validate:"min=0"`

	// Temperature is the sampling temperature for solver calls.
	Temperature float64 `json:"temperature" validate:"min=0,max=2"`
}

// Validate checks the request against its struct constraints. Failures wrap
// ErrInvalidSolveRequest.
func (r *SolveRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSolveRequest, err)
	}
	return nil
}

// SolveResult records every intermediate answer of a solve.
type SolveResult struct {
	// Drafts are the extracted sample answers in request order, empty ones included.
	Drafts []string `json:"drafts"`

	// Voted is the majority draft.
	Voted string `json:"voted"`

	// Reviewed is the draft after the review pass.
	Reviewed string `json:"reviewed"`

	// Output is the final single-line answer.
	Output string `json:"output"`
}

// SampleInput parameterizes the sampling stage.
type SampleInput struct {
	Domain      string  `json:"domain" validate:"required"`
	Question    string  `json:"question"`
	Samples     int     `json:"samples" validate:"min=1"`
	Shots       int     `json:"shots" validate:"min=0"`
	Temperature float64 `json:"temperature" validate:"min=0,max=2"`
}

// Validate checks the sampling parameters.
func (s *SampleInput) Validate() error { return validate.Struct(s) }

// SampleOutput carries the sampled drafts and their majority vote.
type SampleOutput struct {
	Drafts []string `json:"drafts"`
	Voted  string   `json:"voted"`
}

// ReviewInput parameterizes the review stage.
type ReviewInput struct {
	Domain   string `json:"domain"`
	Question string `json:"question"`
	Draft    string `json:"draft"`
}

// FinalizeInput parameterizes the finalization stage.
type FinalizeInput struct {
	Question string `json:"question"`
	Draft    string `json:"draft"`
}
