package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/ahrav/go-quorum/internal/prompt"
)

var errUnavailable = errors.New("connection refused")

type call struct {
	System      string
	Prompt      string
	Temperature float64
}

type reply struct {
	text string
	err  error
}

// scriptedCompleter returns queued replies per system instruction and
// records every call. An exhausted queue fails the call.
type scriptedCompleter struct {
	mu      sync.Mutex
	replies map[string][]reply
	calls   []call
}

func newScripted() *scriptedCompleter {
	return &scriptedCompleter{replies: make(map[string][]reply)}
}

func (s *scriptedCompleter) on(system string, replies ...reply) *scriptedCompleter {
	s.replies[system] = append(s.replies[system], replies...)
	return s
}

func (s *scriptedCompleter) Complete(_ context.Context, system, userPrompt string, temperature float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, call{System: system, Prompt: userPrompt, Temperature: temperature})
	queue := s.replies[system]
	if len(queue) == 0 {
		return "", errUnavailable
	}
	r := queue[0]
	s.replies[system] = queue[1:]
	return r.text, r.err
}

func (s *scriptedCompleter) callsFor(system string) []call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []call
	for _, c := range s.calls {
		if c.System == system {
			out = append(out, c)
		}
	}
	return out
}

func (s *scriptedCompleter) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func ok(text string) reply { return reply{text: text} }

func failed() reply { return reply{err: errUnavailable} }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	return Config{CallBudget: 20, SampleTemperature: 0.7, Shots: 2}
}

func solverSamples(c *scriptedCompleter) []call { return c.callsFor(prompt.SolverSystem) }
