package answer

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "marker on last line", in: "reasoning...\nFINAL_ANSWER: 42", want: "42"},
		{name: "no marker keeps whole text", in: "  The answer\n is   Paris ", want: "The answer is Paris"},
		{name: "content after marker spans lines", in: "FINAL_ANSWER: x = 3\nand y = 4", want: "x = 3 and y = 4"},
		{name: "last marker wins", in: "FINAL_ANSWER: 7\nwait, recompute\nFINAL_ANSWER: 8", want: "8"},
		{name: "marker search is case sensitive", in: "final answer: 9", want: "final answer: 9"},
		{name: "redundant lowercase marker stripped", in: "final_answer: 9", want: "9"},
		{name: "doubled marker stripped", in: "FINAL_ANSWER: Final_Answer:  10", want: "10"},
		{name: "marker with nothing after", in: "work\nFINAL_ANSWER:", want: ""},
		{name: "tabs and newlines collapse", in: "FINAL_ANSWER:\t a\t\tb \n", want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.in))
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	seeds := []string{
		"",
		"reasoning...\nFINAL_ANSWER: 42",
		"FINAL_ANSWER: a FINAL_ANSWER: b",
		"final_answer: FINAL_ANSWER: c",
		"FINAL_ANSWER: final_answer: final_answer: d",
		"x FINAL_ANSWER:\n\n",
		"FINAL_\nANSWER: split",
	}
	for _, s := range seeds {
		once := Extract(s)
		assert.Equal(t, once, Extract(once), "input %q", s)
	}

	f := func(s string) bool {
		once := Extract(s)
		return Extract(once) == once
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestExtract_SingleLine(t *testing.T) {
	f := func(s string) bool {
		out := Extract(s)
		for _, r := range out {
			if r == '\n' || r == '\r' {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(" \n\t "))
	assert.Equal(t, "a b c", Normalize("a\nb\r\n  c"))
	assert.Equal(t, "single", Normalize("single"))
}

func TestStripChoiceLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A) Paris", "Paris"},
		{"(B) London", "London"},
		{"C. 42", "42"},
		{"D: blue", "blue"},
		{"B]  red", "red"},
		{"A - Paris", "Paris"},
		{"B- 42", "42"},
		{"C, blue", "blue"},
		{"D -> green", "green"},
		{"D'Artagnan", "D'Artagnan"},
		{"Paris", "Paris"},
		{"A cat", "A cat"},
		{"E) outside range", "E) outside range"},
		{"A)", "A)"},
		{"Apple", "Apple"},
		{"3.14", "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripChoiceLabel(tt.in))
		})
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantVerdict Verdict
		wantAnswer  string
	}{
		{name: "accept", in: "ACCEPT: 42", wantVerdict: VerdictAccept, wantAnswer: "42"},
		{name: "revise", in: "REVISE: 41", wantVerdict: VerdictRevise, wantAnswer: "41"},
		{name: "lowercase", in: "revise:  the\nanswer", wantVerdict: VerdictRevise, wantAnswer: "the answer"},
		{name: "leading whitespace", in: "\n  ACCEPT: Paris", wantVerdict: VerdictAccept, wantAnswer: "Paris"},
		{name: "verdict after preamble", in: "Looks right. ACCEPT: Paris", wantVerdict: VerdictNone, wantAnswer: ""},
		{name: "verdict mid sentence", in: "I would not ACCEPT: it; REVISE: Rome", wantVerdict: VerdictNone, wantAnswer: ""},
		{name: "empty payload", in: "ACCEPT:", wantVerdict: VerdictAccept, wantAnswer: ""},
		{name: "neither", in: "Looks right to me: 42", wantVerdict: VerdictNone, wantAnswer: ""},
		{name: "keyword glued to word", in: "PREACCEPT: 1", wantVerdict: VerdictNone, wantAnswer: ""},
		{name: "empty", in: "", wantVerdict: VerdictNone, wantAnswer: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, a := ParseVerdict(tt.in)
			assert.Equal(t, tt.wantVerdict, v)
			assert.Equal(t, tt.wantAnswer, a)
		})
	}
}
