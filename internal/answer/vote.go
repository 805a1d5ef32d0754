package answer

import "strings"

// Tally is the vote count for one distinct answer.
type Tally struct {
	Answer string
	Votes  int
}

// Count tallies non-blank answers in order of first appearance.
func Count(answers []string) []Tally {
	var tallies []Tally
	pos := make(map[string]int, len(answers))
	for _, a := range answers {
		if strings.TrimSpace(a) == "" {
			continue
		}
		if i, ok := pos[a]; ok {
			tallies[i].Votes++
			continue
		}
		pos[a] = len(tallies)
		tallies = append(tallies, Tally{Answer: a, Votes: 1})
	}
	return tallies
}

// Vote returns the most frequent non-blank answer. Among answers with the same
// count the one seen first wins. Vote returns "" when no answer survives.
func Vote(answers []string) string {
	best := Tally{}
	for _, t := range Count(answers) {
		if t.Votes > best.Votes {
			best = t
		}
	}
	return best.Answer
}
