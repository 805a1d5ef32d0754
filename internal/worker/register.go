// Package worker wires the solve workflow and its activities into a
// Temporal worker.
package worker

import (
	"log/slog"

	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-quorum/internal/activities"
	"github.com/ahrav/go-quorum/internal/pipeline"
	"github.com/ahrav/go-quorum/internal/workflow"
	"github.com/ahrav/go-quorum/pkg/activity"
)

// Registrar is the subset of sdkworker.Worker needed for registration.
type Registrar interface {
	activities.Registry
	RegisterWorkflow(w any)
}

var _ Registrar = (sdkworker.Worker)(nil)

// RegisterAll registers SolveWorkflow and the stage activities backed by
// solver. It must be called once before the worker starts.
func RegisterAll(w Registrar, solver *pipeline.Solver, logger *slog.Logger) {
	base := activity.NewBaseActivities(logger)
	activities.NewActivities(base, solver).Register(w)
	w.RegisterWorkflow(workflow.SolveWorkflow)
}
