package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-quorum/internal/prompt"
)

func TestFinalizer_Finalize(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		reply reply
		want  string
	}{
		{"plain", "the answer is 42", ok("42"), "42"},
		{"strips_label", "B", ok("B) Paris"), "Paris"},
		{"strips_parenthesised_label", "x", ok("(C) 7"), "7"},
		{"strips_dotted_label", "x", ok("D. blue whale"), "blue whale"},
		{"keeps_bare_letter", "x", ok("A"), "A"},
		{"keeps_word_starting_with_letter", "x", ok("A cat"), "A cat"},
		{"collapses_whitespace", "x", ok("  New\n  York \t City "), "New York City"},
		{"call_failure_keeps_cleaned_draft", "A)  Rome\n", failed(), "Rome"},
		{"empty_reply_keeps_draft", "Madrid", ok("   "), "Madrid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newScripted().on(prompt.FinalizeSystem, tt.reply)
			f := NewFinalizer(c, quietLogger())

			assert.Equal(t, tt.want, f.Finalize(context.Background(), "Question?", tt.draft))

			calls := c.callsFor(prompt.FinalizeSystem)
			require.Len(t, calls, 1)
			assert.Zero(t, calls[0].Temperature)
		})
	}
}

func TestFinalizer_EmptyDraftSkipsCall(t *testing.T) {
	c := newScripted().on(prompt.FinalizeSystem, ok("42"))
	f := NewFinalizer(c, quietLogger())

	assert.Empty(t, f.Finalize(context.Background(), "Question?", ""))
	assert.Zero(t, c.total())
}
