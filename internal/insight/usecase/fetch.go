package usecase

import (
	"context"
	"errors"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
	"code-refactor-insight/pkg/github"
	"code-refactor-insight/pkg/sonar"
)

// fetchCommits never fails: upstream errors degrade to an empty result
// carrying the failure reason.
func (uc *implUseCase) fetchCommits(ctx context.Context, repo model.RepoCoordinates) insight.CommitsResult {
	if uc.github == nil {
		return insight.CommitsResult{Failure: uc.failure(ctx, StageCommits, repo.String(), insight.ReasonNotConfigured, github.ErrTokenMissing)}
	}

	uc.l.Infof(ctx, "internal.insight.usecase.fetchCommits: fetching latest %d commits from %s", uc.opts.CommitCount, repo)

	commits, err := uc.github.ListRecentCommits(ctx, repo.Owner, repo.Name, uc.opts.CommitCount)
	if err != nil {
		return insight.CommitsResult{Failure: uc.failure(ctx, StageCommits, repo.String(), githubReason(err), err)}
	}

	records := make([]model.CommitRecord, 0, len(commits))
	for _, c := range commits {
		records = append(records, model.CommitRecord{
			SHA:       c.SHA,
			Message:   c.Message,
			Author:    c.AuthorName,
			Timestamp: c.AuthorDate,
		})
	}
	return insight.CommitsResult{Commits: records}
}

// fetchMetrics follows the same degrade-to-empty policy as fetchCommits.
func (uc *implUseCase) fetchMetrics(ctx context.Context, projectKey string) insight.MetricsResult {
	if uc.sonar == nil || projectKey == "" {
		return insight.MetricsResult{Failure: uc.failure(ctx, StageMetrics, projectKey, insight.ReasonNotConfigured, sonar.ErrNotConfigured)}
	}

	uc.l.Infof(ctx, "internal.insight.usecase.fetchMetrics: fetching SonarCloud analysis for %s", projectKey)

	measures, err := uc.sonar.GetMeasures(ctx, projectKey, uc.opts.MetricKeys)
	if err != nil {
		return insight.MetricsResult{Failure: uc.failure(ctx, StageMetrics, projectKey, sonarReason(err), err)}
	}

	return insight.MetricsResult{Metrics: model.QualityMetrics(measures)}
}

func (uc *implUseCase) failure(ctx context.Context, stage, target string, reason insight.FailureReason, err error) *insight.FetchFailure {
	f := &insight.FetchFailure{Stage: stage, Reason: reason, Err: err}
	if reason == insight.ReasonNotConfigured {
		uc.l.Warnf(ctx, "internal.insight.usecase: stage=%s target=%s skipped: %v", stage, target, err)
	} else {
		uc.l.Errorf(ctx, "internal.insight.usecase: stage=%s target=%s reason=%s: %v", stage, target, reason, err)
	}
	return f
}

func githubReason(err error) insight.FailureReason {
	switch {
	case errors.Is(err, github.ErrUnauthorized), errors.Is(err, github.ErrTokenMissing):
		return insight.ReasonUnauthorized
	case errors.Is(err, github.ErrRateLimited):
		return insight.ReasonRateLimited
	case errors.Is(err, github.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return insight.ReasonNetwork
	default:
		return insight.ReasonUpstream
	}
}

func sonarReason(err error) insight.FailureReason {
	switch {
	case errors.Is(err, sonar.ErrNotConfigured):
		return insight.ReasonNotConfigured
	case errors.Is(err, sonar.ErrUnauthorized):
		return insight.ReasonUnauthorized
	case errors.Is(err, sonar.ErrRateLimited):
		return insight.ReasonRateLimited
	case errors.Is(err, sonar.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return insight.ReasonNetwork
	default:
		return insight.ReasonUpstream
	}
}
