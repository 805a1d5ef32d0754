package pipeline

import "context"

// Completer sends one system instruction and one user prompt to a model and
// returns the reply text. *llm.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, system, prompt string, temperature float64) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, system, prompt string, temperature float64) (string, error)

// Complete implements Completer.
func (f CompleterFunc) Complete(ctx context.Context, system, prompt string, temperature float64) (string, error) {
	return f(ctx, system, prompt, temperature)
}
