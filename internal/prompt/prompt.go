// Package prompt renders the instructions sent to the completion endpoint:
// the few-shot solver prompt, the review prompt and the finalization prompt,
// together with the system instruction that accompanies each.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ahrav/go-quorum/internal/domain"
)

// AnswerMarker prefixes the line that carries a solver's answer.
const AnswerMarker = "FINAL_ANSWER:"

// System instructions for each pipeline stage.
const (
	SolverSystem = "You are a careful expert problem solver. Reason briefly, then state your answer. " +
		"Always finish with a line of the form " + AnswerMarker + " <answer>."

	ReviewSystem = "You are a meticulous reviewer of answers to test questions. " +
		"Reply with exactly one line: ACCEPT: <answer> if the draft is correct, or REVISE: <corrected answer> if it is not."

	FinalizeSystem = "You are a helpful assistant. Reply with only the final answer, no explanation."
)

// ExampleSource supplies few-shot examples for a question.
type ExampleSource interface {
	Select(domain, question string, k int) []domain.Example
}

// Builder composes solver prompts with examples drawn from an ExampleSource.
type Builder struct {
	source ExampleSource
}

// NewBuilder returns a Builder backed by source. A nil source yields prompts
// without examples.
func NewBuilder(source ExampleSource) *Builder {
	return &Builder{source: source}
}

// ForQuestion selects up to kshots examples for the question and renders the
// solver prompt.
func (b *Builder) ForQuestion(tag, question string, kshots int) string {
	var shots []domain.Example
	if b.source != nil {
		shots = b.source.Select(tag, question, kshots)
	}
	return Build(tag, question, shots)
}

// Build renders the solver prompt for question using shots as worked examples.
func Build(tag, question string, shots []domain.Example) string {
	var sb strings.Builder

	if len(shots) > 0 {
		sb.WriteString("Here are solved examples of similar questions.\n\n")
		for _, ex := range shots {
			fmt.Fprintf(&sb, "Q: %s\nA: %s\n\n", strings.TrimSpace(ex.Input), strings.TrimSpace(ex.Output))
		}
	}

	fmt.Fprintf(&sb, "You are answering a question from the %q domain.\n", tag)
	sb.WriteString("Solve the following question.\n\n")
	fmt.Fprintf(&sb, "Question:\n%s\n\n", strings.TrimSpace(question))
	sb.WriteString("Keep any reasoning short. Your response MUST end with a final line of the form:\n")
	sb.WriteString(AnswerMarker + " <answer>")

	return sb.String()
}

// Review renders the prompt asking the model to accept or revise draft.
func Review(tag, question, draft string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Domain: %s\n\n", tag)
	fmt.Fprintf(&sb, "Question:\n%s\n\n", strings.TrimSpace(question))
	fmt.Fprintf(&sb, "Draft answer:\n%s\n\n", strings.TrimSpace(draft))
	sb.WriteString("Check whether the draft answer is correct and complete.\n")
	sb.WriteString("If it is, respond with: ACCEPT: <answer>\n")
	sb.WriteString("If it is not, respond with: REVISE: <corrected answer>\n")
	sb.WriteString("Respond with that single line only.")
	return sb.String()
}

// Finalize renders the prompt asking the model to reduce draft to the minimal
// literal answer.
func Finalize(question, draft string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Question:\n%s\n\n", strings.TrimSpace(question))
	fmt.Fprintf(&sb, "Proposed answer:\n%s\n\n", strings.TrimSpace(draft))
	sb.WriteString("Return only the minimal final answer: a number, word, short phrase or expression. ")
	sb.WriteString("Do not repeat the question or include working or explanation.")
	return sb.String()
}
