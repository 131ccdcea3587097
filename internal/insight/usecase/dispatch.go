package usecase

import (
	"context"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
)

// dispatch posts the report to the return URL. The sender retries once;
// a final failure is only logged since the trigger request is long gone.
func (uc *implUseCase) dispatch(ctx context.Context, returnURL string, report model.Report) (bool, int) {
	status := insight.StatusSuccess
	if !report.HasData() {
		status = insight.StatusError
	}

	msg := insight.Message{
		EventName: uc.opts.EventName,
		Message:   Render(report),
		Status:    status,
		Username:  uc.opts.Username,
		Report:    &report,
	}

	uc.l.Infof(ctx, "internal.insight.usecase.dispatch: sending report for %s to return URL", report.Repository)

	res, err := uc.sender.PostJSON(ctx, returnURL, msg)
	if err != nil {
		uc.l.Errorf(ctx, "internal.insight.usecase: stage=%s repo=%s url=%s gave up after %d attempt(s): %v",
			StageDispatch, report.Repository, returnURL, res.Attempts, err)
		return false, res.Attempts
	}

	uc.l.Infof(ctx, "internal.insight.usecase.dispatch: report for %s delivered (status %d, %d attempt(s))",
		report.Repository, res.StatusCode, res.Attempts)
	return true, res.Attempts
}

// mirror copies the structured report to the configured log channel.
func (uc *implUseCase) mirror(ctx context.Context, report model.Report) {
	if uc.opts.LogURL == "" {
		return
	}

	if _, err := uc.sender.PostJSON(ctx, uc.opts.LogURL, report); err != nil {
		uc.l.Errorf(ctx, "internal.insight.usecase: stage=%s repo=%s failed to log report: %v", StageMirror, report.Repository, err)
		return
	}
	uc.l.Infof(ctx, "internal.insight.usecase.mirror: report for %s logged", report.Repository)
}
