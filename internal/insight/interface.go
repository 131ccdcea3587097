package insight

import (
	"context"

	"code-refactor-insight/pkg/webhook"
	"code-refactor-insight/pkg/worker"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Schedule validates a trigger and enqueues one report cycle. It never
	// waits for the cycle itself.
	Schedule(ctx context.Context, input TriggerInput) (ScheduleOutput, error)

	// Process runs one report cycle synchronously: fetch, compose, deliver.
	// Failures are logged and reflected in the output, never returned.
	Process(ctx context.Context, input ProcessInput) ProcessOutput
}

// Scheduler accepts background jobs. *worker.Pool satisfies it.
type Scheduler interface {
	Submit(job worker.Job) error
}

// Sender delivers a JSON payload to a URL. *webhook.Sender satisfies it.
type Sender interface {
	PostJSON(ctx context.Context, url string, payload any) (webhook.Result, error)
}
