package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/pkg/worker"
)

// Schedule validates the trigger and hands one report cycle to the scheduler.
func (uc *implUseCase) Schedule(ctx context.Context, input insight.TriggerInput) (insight.ScheduleOutput, error) {
	req := input.Request

	if err := validateReturnURL(req.ReturnURL); err != nil {
		return insight.ScheduleOutput{}, err
	}
	if err := validateSettings(req.Settings); err != nil {
		return insight.ScheduleOutput{}, err
	}

	repo, err := uc.resolveRepo(req)
	if err != nil {
		return insight.ScheduleOutput{}, err
	}

	pi := insight.ProcessInput{
		TaskID:     uuid.NewString(),
		ChannelID:  req.ChannelID,
		ReturnURL:  req.ReturnURL,
		Repo:       repo,
		ProjectKey: uc.resolveProjectKey(req),
	}

	job := worker.Job{
		ID:   pi.TaskID,
		Name: JobName,
		Run: func(jobCtx context.Context) {
			uc.Process(jobCtx, pi)
		},
	}

	if err := uc.scheduler.Submit(job); err != nil {
		uc.l.Warnf(ctx, "internal.insight.usecase.Schedule: submit task %s for %s: %v", pi.TaskID, repo, err)
		if errors.Is(err, worker.ErrQueueFull) || errors.Is(err, worker.ErrPoolClosed) {
			return insight.ScheduleOutput{}, insight.ErrBusy
		}
		return insight.ScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "internal.insight.usecase.Schedule: task %s scheduled for %s (channel %s)", pi.TaskID, repo, req.ChannelID)
	return insight.ScheduleOutput{TaskID: pi.TaskID, Repository: repo.String()}, nil
}
