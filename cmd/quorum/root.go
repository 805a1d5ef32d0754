package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-quorum/internal/dataset"
	"github.com/ahrav/go-quorum/internal/domain"
	"github.com/ahrav/go-quorum/internal/llm/configuration"
	"github.com/ahrav/go-quorum/internal/worker"
)

// options holds flag values shared by all subcommands.
type options struct {
	configPath string
	devPath    string
	testPath   string
	outPath    string
	logLevel   string
	logFormat  string
	temporal   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "quorum",
		Short: "Answer a test set with few-shot sampling, voting, review and finalization",
		Long: `quorum reads labeled examples and test questions, asks a remote model
for several sampled answers per question, keeps the majority answer,
has the model review it once, reduces it to a minimal answer, and writes
one {"output": ...} record per question.

Run without arguments to process the default files in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&opts.devPath, "dev", dataset.DefaultDevPath, "labeled development set")
	pf.StringVar(&opts.testPath, "test", dataset.DefaultTestPath, "test set to answer")
	pf.StringVar(&opts.outPath, "out", dataset.DefaultOutputPath, "answer file to write")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	run := &cobra.Command{
		Use:   "run",
		Short: "Answer the test set (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, opts)
		},
	}
	run.Flags().BoolVar(&opts.temporal, "temporal", false, "submit one workflow per question to a Temporal worker")

	root.AddCommand(run, newWorkerCmd(opts))
	return root
}

// setup loads configuration with flag overrides and builds the logger.
func setup(cmd *cobra.Command, opts *options) (*configuration.Config, *slog.Logger, error) {
	cfg, err := configuration.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.logLevel != "" {
		cfg.Observability.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Observability.LogFormat = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runPipeline(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	queries, err := dataset.LoadQueries(opts.testPath)
	if err != nil {
		return err
	}

	var answers []string
	if opts.temporal {
		answers, err = solveWithTemporal(ctx, cfg, queries, logger)
		if err != nil {
			return err
		}
	} else {
		solver, client, err := worker.InitializeSolver(ctx, cfg, opts.devPath, logger)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		answers = solver.SolveAll(ctx, queries)

		stats := client.CacheStats()
		logger.InfoContext(ctx, "cache summary", "hits", stats.Hits, "misses", stats.Misses, "errors", stats.Errors)
	}

	if err := dataset.WriteAnswers(opts.outPath, answers); err != nil {
		return err
	}

	logSummary(ctx, logger, queries, answers)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d answers to %s\n", len(answers), opts.outPath)
	return ctx.Err()
}

// logSummary reports how many questions ended without an answer.
func logSummary(ctx context.Context, logger *slog.Logger, queries []domain.Query, answers []string) {
	empty := 0
	for _, a := range answers {
		if dataset.Clean(a) == "" {
			empty++
		}
	}
	logger.InfoContext(ctx, "run complete",
		"questions", len(queries),
		"answered", len(answers)-empty,
		"empty", empty)
}
