package answer

import (
	"strings"
	"testing"
)

// FuzzExtract checks that extraction is idempotent and always single-line.
func FuzzExtract(f *testing.F) {
	f.Add("")
	f.Add("reasoning...\nFINAL_ANSWER: 42")
	f.Add("FINAL_ANSWER: a\nFINAL_ANSWER: b")
	f.Add("final_answer: FINAL_ANSWER: x")
	f.Add("🌍 FINAL_ANSWER:\t🚀\n")
	f.Add("FINAL_ANSWER:FINAL_ANSWER:")

	f.Fuzz(func(t *testing.T, s string) {
		once := Extract(s)
		if twice := Extract(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", s, once, twice)
		}
		if strings.ContainsAny(once, "\n\r") {
			t.Fatalf("multi-line output %q", once)
		}
		if once != strings.TrimSpace(once) {
			t.Fatalf("untrimmed output %q", once)
		}
	})
}
