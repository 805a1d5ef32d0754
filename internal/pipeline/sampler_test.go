package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/examples"
	"github.com/ahrav/go-quorum/internal/llm/ratelimit"
	"github.com/ahrav/go-quorum/internal/prompt"
)

func TestClampSamples(t *testing.T) {
	tests := []struct {
		name       string
		samples    int
		callBudget int
		want       int
	}{
		{"within_budget", 3, 20, 3},
		{"over_budget", 30, 20, 18},
		{"zero_samples", 0, 20, 1},
		{"negative_samples", -4, 20, 1},
		{"tiny_budget", 3, 2, 1},
		{"exact_budget", 18, 20, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSamples(tt.samples, tt.callBudget))
		})
	}
}

func newTestSampler(c Completer, source prompt.ExampleSource, budget int) *Sampler {
	return NewSampler(c, prompt.NewBuilder(source), nil, budget, quietLogger())
}

func TestSampleAndVote_Majority(t *testing.T) {
	c := newScripted().on(prompt.SolverSystem,
		ok("Working...\nFINAL_ANSWER: 12"),
		ok("FINAL_ANSWER:  13 "),
		ok("so FINAL_ANSWER: 12"),
	)
	s := newTestSampler(c, nil, 20)

	voted, drafts := s.SampleAndVote(context.Background(), "math", "What is 3*4?", 3, 2, 0.7)
	assert.Equal(t, "12", voted)
	assert.Equal(t, []string{"12", "13", "12"}, drafts)

	calls := solverSamples(c)
	require.Len(t, calls, 3)
	for _, cl := range calls {
		assert.InDelta(t, 0.7, cl.Temperature, 1e-9)
		assert.Contains(t, cl.Prompt, "What is 3*4?")
	}
}

func TestSampleAndVote_FailuresBecomeEmptyDrafts(t *testing.T) {
	c := newScripted().on(prompt.SolverSystem, failed(), ok("FINAL_ANSWER: Paris"))
	s := newTestSampler(c, nil, 20)

	voted, drafts := s.SampleAndVote(context.Background(), "geo", "Capital of France?", 2, 2, 0.7)
	assert.Equal(t, "Paris", voted)
	assert.Equal(t, []string{"", "Paris"}, drafts)
}

func TestSampleAndVote_AllFail(t *testing.T) {
	c := newScripted()
	s := newTestSampler(c, nil, 20)

	voted, drafts := s.SampleAndVote(context.Background(), "trivia", "Who?", 2, 2, 0.7)
	assert.Empty(t, voted)
	assert.Equal(t, []string{"", ""}, drafts)
	assert.Equal(t, 2, c.total())
}

func TestSampleAndVote_ClampsToBudget(t *testing.T) {
	c := newScripted()
	s := newTestSampler(c, nil, 4)

	_, drafts := s.SampleAndVote(context.Background(), "math", "1+1?", 10, 2, 0.7)
	assert.Len(t, drafts, 2)
	assert.Equal(t, 2, c.total())
}

func TestSampleAndVote_BlankQuestionSkipsCalls(t *testing.T) {
	c := newScripted()
	s := newTestSampler(c, nil, 20)

	voted, drafts := s.SampleAndVote(context.Background(), "math", "   ", 3, 2, 0.7)
	assert.Empty(t, voted)
	assert.Empty(t, drafts)
	assert.Zero(t, c.total())
}

func TestSampleAndVote_UsesDomainShots(t *testing.T) {
	idx := examples.New([]domain.Example{
		{Input: "What is 2 plus 2?", Output: "4", Domain: "math"},
		{Input: "What is the capital of Spain?", Output: "Madrid", Domain: "geo"},
	})
	c := newScripted()
	s := newTestSampler(c, idx, 20)

	s.SampleAndVote(context.Background(), "math", "What is 3 plus 5?", 1, 2, 0.7)

	calls := solverSamples(c)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "Q: What is 2 plus 2?\nA: 4")
	assert.NotContains(t, calls[0].Prompt, "Madrid")
}

func TestSampleAndVote_PacerCancellation(t *testing.T) {
	c := newScripted().on(prompt.SolverSystem, ok("FINAL_ANSWER: a"), ok("FINAL_ANSWER: b"))
	s := NewSampler(c, prompt.NewBuilder(nil), ratelimit.NewPacer(time.Hour), 20, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	voted, drafts := s.SampleAndVote(ctx, "x", "q?", 2, 0, 0.7)
	assert.Equal(t, "a", voted)
	assert.Equal(t, []string{"a"}, drafts, "second sample waits on the pacer and is abandoned")
	assert.Equal(t, 1, c.total())
}
