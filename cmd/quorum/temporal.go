package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	sdklog "go.temporal.io/sdk/log"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/llm/configuration"
	"github.com/ahrav/go-quorum/internal/worker"
	"github.com/ahrav/go-quorum/internal/workflow"
)

// stageTimeoutFactor scales the per-call timeout to cover the most calls a
// stage can make.
const stageTimeoutFactor = 2

func newWorkerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run a Temporal worker that executes solve workflows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorker(cmd, opts)
		},
	}
}

func dialTemporal(cfg *configuration.Config, logger *slog.Logger) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    sdklog.NewStructuredLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to temporal at %s: %w", cfg.Temporal.HostPort, err)
	}
	return c, nil
}

func runWorker(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	solver, llmClient, err := worker.InitializeSolver(ctx, cfg, opts.devPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = llmClient.Close() }()

	c, err := dialTemporal(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	w := sdkworker.New(c, cfg.Temporal.TaskQueue, sdkworker.Options{})
	worker.RegisterAll(w, solver, logger)

	if err := w.Start(); err != nil {
		return fmt.Errorf("starting worker: %w", err)
	}
	logger.InfoContext(ctx, "worker started", "task_queue", cfg.Temporal.TaskQueue)

	<-ctx.Done()
	w.Stop()
	return nil
}

// stageTimeoutSeconds bounds one workflow stage: sampling issues up to
// CallBudget-2 calls back to back.
func stageTimeoutSeconds(cfg *configuration.Config) int {
	perCall := cfg.Timeout + cfg.SamplePause
	secs := int(perCall.Seconds()) * max(cfg.CallBudget-2, 1) * stageTimeoutFactor
	return min(max(secs, 1), 3600)
}

// solveWithTemporal submits one workflow per query, in order, and collects
// the final answers. A failed workflow yields an empty answer.
func solveWithTemporal(
	ctx context.Context,
	cfg *configuration.Config,
	queries []domain.Query,
	logger *slog.Logger,
) ([]string, error) {
	c, err := dialTemporal(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	runID := uuid.New().String()
	timeout := stageTimeoutSeconds(cfg)
	answers := make([]string, len(queries))

	for i, q := range queries {
		if ctx.Err() != nil {
			break
		}

		run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
			ID:        fmt.Sprintf("quorum-%s-%d", runID, i),
			TaskQueue: cfg.Temporal.TaskQueue,
		}, workflow.SolveWorkflowName, domain.SolveRequest{
			Query:               q,
			StageTimeoutSeconds: timeout,
			Shots:               cfg.Shots,
			Temperature:         cfg.SampleTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("starting workflow %d: %w", i, err)
		}

		var res domain.SolveResult
		if err := run.Get(ctx, &res); err != nil {
			logger.WarnContext(ctx, "workflow failed", "index", i, "workflow_id", run.GetID(), "error", err)
			continue
		}
		answers[i] = res.Output
		logger.InfoContext(ctx, "answered", "index", i+1, "total", len(queries), "workflow_id", run.GetID())
	}
	return answers, nil
}
