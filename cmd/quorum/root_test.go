package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/llm/configuration"
)

// fakeModel answers every chat completion with reply.
func fakeModel(t *testing.T, reply string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "cmpl-1",
			"choices": []map[string]any{{
				"message":       map[string]string{"role": "assistant", "content": reply},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 1, "total_tokens": 11},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand_WritesAnswers(t *testing.T) {
	srv, calls := fakeModel(t, "4")
	t.Setenv(configuration.EnvBaseURL, srv.URL)
	t.Setenv(configuration.EnvAPIKey, "test-key")

	dir := t.TempDir()
	dev := writeFile(t, dir, "dev.json", `[
  {"input": "What is 1 + 1?", "output": "2", "domain": "math"},
  {"input": "Capital of France?", "output": "Paris", "domain": "geography"}
]`)
	test := writeFile(t, dir, "test.json", `[
  {"input": "What is 2 + 2?", "domain": "math"},
  {"input": "What is 3 + 1?", "domain": null}
]`)
	cfgPath := writeFile(t, dir, "quorum.yaml", "sample_pause: 0s\nobservability:\n  log_level: error\n")
	out := filepath.Join(dir, "answers.json")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--dev", dev, "--test", test, "--out", out, "--config", cfgPath})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "Wrote 2 answers to "+out+"\n", stdout.String())
	assert.Positive(t, calls.Load())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got []domain.Output
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []domain.Output{{Output: "4"}, {Output: "4"}}, got)
}

func TestRunCommand_MissingTestFile(t *testing.T) {
	srv, calls := fakeModel(t, "4")
	t.Setenv(configuration.EnvBaseURL, srv.URL)

	dir := t.TempDir()
	dev := writeFile(t, dir, "dev.json", `[]`)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--dev", dev, "--test", filepath.Join(dir, "missing.json"), "--out", filepath.Join(dir, "a.json")})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Zero(t, calls.Load())
	assert.NoFileExists(t, filepath.Join(dir, "a.json"))
}

func TestRootCommand_InvalidLogLevelFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "--test", filepath.Join(t.TempDir(), "x.json")})

	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, configuration.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{
			name: "text", level: "info", format: "text",
			check: func(t *testing.T, out string) { assert.Contains(t, out, "msg=hello") },
		},
		{
			name: "json", level: "debug", format: "json",
			check: func(t *testing.T, out string) { assert.Contains(t, out, `"msg":"hello"`) },
		},
		{
			name: "level filters", level: "error", format: "text",
			check: func(t *testing.T, out string) { assert.Empty(t, out) },
		},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			logger.Info("hello")
			tt.check(t, strings.TrimSpace(buf.String()))
		})
	}
}
