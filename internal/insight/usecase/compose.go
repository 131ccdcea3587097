package usecase

import (
	"fmt"
	"time"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
)

// Compose merges both fetch results into a Report. It has no side effects
// and always returns a well-formed report.
func Compose(repo, projectKey string, commits insight.CommitsResult, metrics insight.MetricsResult, now time.Time) model.Report {
	report := model.Report{
		Repository:  repo,
		ProjectKey:  projectKey,
		Commits:     []model.CommitRecord{},
		Metrics:     model.QualityMetrics{},
		Summary:     SummaryText,
		GeneratedAt: now.UTC(),
	}

	report.CommitsStatus, report.CommitsNote = sectionStatus(len(commits.Commits), commits.Failure)
	if len(commits.Commits) > 0 {
		report.Commits = append(report.Commits, commits.Commits...)
	}

	report.MetricsStatus, report.MetricsNote = sectionStatus(len(metrics.Metrics), metrics.Failure)
	for k, v := range metrics.Metrics {
		report.Metrics[k] = v
	}

	return report
}

func sectionStatus(n int, failure *insight.FetchFailure) (model.SectionStatus, string) {
	switch {
	case n > 0:
		return model.SectionOK, ""
	case failure != nil:
		return model.SectionUnavailable, fmt.Sprintf("%s (%s)", model.NoDataNote, failure.Reason)
	default:
		return model.SectionEmpty, model.NoDataNote
	}
}
