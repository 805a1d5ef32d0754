// Package activity provides shared infrastructure for Temporal activity
// implementations: workflow context extraction, heartbeats, and logging that
// works both inside an activity and in plain unit tests.
package activity

import (
	"context"
	"log/slog"

	"go.temporal.io/sdk/activity"
)

// WorkflowContext contains metadata extracted from the Temporal activity context.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	ActivityID string
	Attempt    int32
}

// BaseActivities provides common infrastructure for activity types.
type BaseActivities struct {
	logger *slog.Logger
}

// NewBaseActivities creates BaseActivities. logger receives log lines when
// the context is not an activity context; nil uses slog.Default.
func NewBaseActivities(logger *slog.Logger) BaseActivities {
	if logger == nil {
		logger = slog.Default()
	}
	return BaseActivities{logger: logger}
}

// GetWorkflowContext extracts workflow execution details. Outside an
// activity (where activity.GetInfo panics) it returns fixed test values.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	var wfCtx WorkflowContext

	func() {
		defer func() {
			if r := recover(); r != nil {
				wfCtx = WorkflowContext{
					WorkflowID: "test-workflow",
					RunID:      "test-run",
					ActivityID: "test-activity",
					Attempt:    1,
				}
			}
		}()

		info := activity.GetInfo(ctx)
		wfCtx.WorkflowID = info.WorkflowExecution.ID
		wfCtx.RunID = info.WorkflowExecution.RunID
		wfCtx.ActivityID = info.ActivityID
		wfCtx.Attempt = info.Attempt
	}()

	return wfCtx
}

// Log writes an info line through the activity logger, or through the
// fallback slog logger outside an activity.
func (b *BaseActivities) Log(ctx context.Context, msg string, keyvals ...any) {
	if !SafeLog(ctx, msg, keyvals...) && b.logger != nil {
		b.logger.InfoContext(ctx, msg, keyvals...)
	}
}

// LogError is Log at error level.
func (b *BaseActivities) LogError(ctx context.Context, msg string, keyvals ...any) {
	if !SafeLogError(ctx, msg, keyvals...) && b.logger != nil {
		b.logger.ErrorContext(ctx, msg, keyvals...)
	}
}

// RecordHeartbeat safely records a heartbeat in the Temporal activity context.
func (b *BaseActivities) RecordHeartbeat(ctx context.Context, details ...any) {
	RecordHeartbeat(ctx, details...)
}

// SafeLog logs through the activity logger and reports whether ctx was an
// activity context.
func SafeLog(ctx context.Context, msg string, keyvals ...any) (logged bool) {
	defer func() {
		if recover() != nil {
			logged = false
		}
	}()
	activity.GetLogger(ctx).Info(msg, keyvals...)
	return true
}

// SafeLogError is SafeLog at error level.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) (logged bool) {
	defer func() {
		if recover() != nil {
			logged = false
		}
	}()
	activity.GetLogger(ctx).Error(msg, keyvals...)
	return true
}

// RecordHeartbeat records activity heartbeat details; outside an activity
// context it does nothing.
func RecordHeartbeat(ctx context.Context, details ...any) {
	defer func() {
		_ = recover()
	}()
	activity.RecordHeartbeat(ctx, details...)
}
