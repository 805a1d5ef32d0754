package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahrav/go-quorum/internal/dataset"
	"github.com/ahrav/go-quorum/internal/examples"
	"github.com/ahrav/go-quorum/internal/llm"
	"github.com/ahrav/go-quorum/internal/llm/configuration"
	"github.com/ahrav/go-quorum/internal/pipeline"
)

// InitializeLLMClient creates the completion client from cfg.
func InitializeLLMClient(ctx context.Context, cfg *configuration.Config, logger *slog.Logger) (*llm.Client, error) {
	client, err := llm.NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return client, nil
}

// InitializeIndex loads the development set at devPath into an example index.
func InitializeIndex(devPath string) (*examples.Index, error) {
	exs, err := dataset.LoadExamples(devPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load examples: %w", err)
	}
	return examples.New(exs), nil
}

// InitializeSolver builds the client, the example index and the solver.
// The returned client must be closed by the caller.
func InitializeSolver(
	ctx context.Context,
	cfg *configuration.Config,
	devPath string,
	logger *slog.Logger,
) (*pipeline.Solver, *llm.Client, error) {
	idx, err := InitializeIndex(devPath)
	if err != nil {
		return nil, nil, err
	}

	client, err := InitializeLLMClient(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "solver ready",
		"examples", idx.Len(),
		"domains", idx.Domains(),
		"config", cfg.String())

	return pipeline.NewSolver(client, idx, pipeline.ConfigFrom(cfg), logger), client, nil
}
