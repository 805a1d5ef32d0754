// Package answer turns raw model responses into single-line answer strings and
// aggregates repeated samples by majority vote.
package answer

import (
	"regexp"
	"strings"

	"github.com/ahrav/go-quorum/internal/prompt"
)

var (
	// choiceLabel matches a leading multiple-choice label: a letter A-D,
	// optionally parenthesised, followed by punctuation ("A) ", "(B) ",
	// "C - ", "D, "). A bare space is not a separator, so "A cat" is kept.
	choiceLabel = regexp.MustCompile(`^\(?[A-D]\s*[^\w\s'’]+\s*`)

	// verdict matches a reply that opens with ACCEPT: or REVISE:.
	verdict = regexp.MustCompile(`(?i)^(ACCEPT|REVISE):(.*)$`)
)

// Normalize collapses every Unicode whitespace run to a single space and trims
// the ends, producing a single-line string.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Extract isolates the answer from a solver response. The text after the last
// FINAL_ANSWER: marker is kept; without a marker the whole response is the
// answer. Redundant leading markers in any case are dropped and the result is
// normalized. Extract is idempotent.
func Extract(text string) string {
	if text == "" {
		return ""
	}
	if i := strings.LastIndex(text, prompt.AnswerMarker); i >= 0 {
		text = text[i+len(prompt.AnswerMarker):]
	}
	text = Normalize(text)
	for hasMarkerPrefix(text) {
		text = Normalize(text[len(prompt.AnswerMarker):])
	}
	return text
}

func hasMarkerPrefix(text string) bool {
	return len(text) >= len(prompt.AnswerMarker) &&
		strings.EqualFold(text[:len(prompt.AnswerMarker)], prompt.AnswerMarker)
}

// StripChoiceLabel removes a leading multiple-choice label ("A) Paris" becomes
// "Paris"). Text that would be left empty is returned unchanged.
func StripChoiceLabel(text string) string {
	loc := choiceLabel.FindStringIndex(text)
	if loc == nil {
		return text
	}
	rest := strings.TrimSpace(text[loc[1]:])
	if rest == "" {
		return text
	}
	return rest
}

// Verdict is a reviewer's decision about a draft.
type Verdict string

const (
	VerdictNone   Verdict = ""
	VerdictAccept Verdict = "ACCEPT"
	VerdictRevise Verdict = "REVISE"
)

// ParseVerdict reads an ACCEPT: or REVISE: reply. It returns the normalized
// answer after the leading verdict, or VerdictNone when the reply does not
// start with either prefix.
func ParseVerdict(text string) (Verdict, string) {
	text = Normalize(text)
	m := verdict.FindStringSubmatch(text)
	if m == nil {
		return VerdictNone, ""
	}
	return Verdict(strings.ToUpper(m[1])), Normalize(m[2])
}
