package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ahrav/go-quorum/internal/llm/transport"
)

// KeyPrefix namespaces every cache entry.
const KeyPrefix = "quorum:llm:"

// canonicalRequest holds the request fields that determine the response.
type canonicalRequest struct {
	Model        string  `json:"model"`
	SystemPrompt string  `json:"system"`
	Prompt       string  `json:"prompt"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
}

// Key derives the cache key for req: the prefix plus the hex SHA-256 of the
// canonical JSON encoding of model, prompts, temperature and max tokens.
func Key(req *transport.Request) (string, error) {
	raw, err := json.Marshal(canonicalRequest{
		Model:        req.Model,
		SystemPrompt: req.SystemPrompt,
		Prompt:       req.Prompt,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encoding cache key: %w", err)
	}
	sum := sha256.Sum256(raw)
	return KeyPrefix + hex.EncodeToString(sum[:]), nil
}
