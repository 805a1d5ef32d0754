// Package dataset reads the development and test sets and writes answer
// files. All files are JSON arrays of objects; unknown fields are ignored.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ahrav/go-quorum/internal/domain"
)

// Default file locations, relative to the working directory.
const (
	DefaultDevPath    = "dev_data.json"
	DefaultTestPath   = "test_data.json"
	DefaultOutputPath = "answers.json"
)

// LoadExamples reads the labeled development set at path.
func LoadExamples(path string) ([]domain.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading examples: %w", err)
	}
	var out []domain.Example
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidExample, path, err)
	}
	return out, nil
}

// testRecord mirrors a test set entry; a nil Domain means the key was
// missing or null.
type testRecord struct {
	Input  string  `json:"input"`
	Domain *string `json:"domain"`
}

// LoadQueries reads the test set at path. Records without a domain get
// domain.UnknownDomain.
func LoadQueries(path string) ([]domain.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading queries: %w", err)
	}
	var records []testRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidQuery, path, err)
	}

	out := make([]domain.Query, len(records))
	for i, r := range records {
		q := domain.Query{Input: r.Input, Domain: domain.UnknownDomain}
		if r.Domain != nil && *r.Domain != "" {
			q.Domain = *r.Domain
		}
		out[i] = q
	}
	return out, nil
}

// Clean flattens an answer for output: newlines become spaces and the ends
// are trimmed.
func Clean(answer string) string {
	answer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(answer)
	return strings.TrimSpace(answer)
}

// WriteAnswers writes one {"output": ...} record per answer, in order, as
// two-space indented UTF-8 JSON without HTML escaping.
func WriteAnswers(path string, answers []string) error {
	records := make([]domain.Output, len(answers))
	for i, a := range answers {
		records[i] = domain.Output{Output: Clean(a)}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}
	return nil
}
