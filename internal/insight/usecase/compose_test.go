package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
)

var fixedNow = time.Date(2025, 2, 22, 12, 0, 0, 0, time.UTC)

func TestCompose(t *testing.T) {
	t.Run("Both Sections Populated", func(t *testing.T) {
		commits := insight.CommitsResult{Commits: []model.CommitRecord{
			{SHA: "6dcb09b5b57875f334f61aebed695e2e4193db5e", Message: "Fix bug", Author: "octocat"},
		}}
		metrics := insight.MetricsResult{Metrics: model.QualityMetrics{"bugs": "2"}}

		r := Compose("octocat/hello", "octocat_hello", commits, metrics, fixedNow)

		if r.CommitsStatus != model.SectionOK || r.MetricsStatus != model.SectionOK {
			t.Errorf("unexpected statuses %s/%s", r.CommitsStatus, r.MetricsStatus)
		}
		if len(r.Commits) != 1 || r.Metrics["bugs"] != "2" {
			t.Errorf("unexpected report content: %+v", r)
		}
		if !r.GeneratedAt.Equal(fixedNow) {
			t.Errorf("unexpected generated_at %s", r.GeneratedAt)
		}
		if !r.HasData() {
			t.Errorf("expected HasData")
		}
	})

	t.Run("Both Sections Empty", func(t *testing.T) {
		r := Compose("octocat/hello", "", insight.CommitsResult{}, insight.MetricsResult{}, fixedNow)

		if r.CommitsStatus != model.SectionEmpty || r.MetricsStatus != model.SectionEmpty {
			t.Errorf("unexpected statuses %s/%s", r.CommitsStatus, r.MetricsStatus)
		}
		if r.CommitsNote != model.NoDataNote || r.MetricsNote != model.NoDataNote {
			t.Errorf("expected no-data notes, got %q/%q", r.CommitsNote, r.MetricsNote)
		}
		if r.Commits == nil || r.Metrics == nil {
			t.Errorf("sections must be non-nil so they encode as [] and {}")
		}
		if r.HasData() {
			t.Errorf("expected no data")
		}
	})

	t.Run("Failed Fetch Is Distinguished From Empty", func(t *testing.T) {
		commits := insight.CommitsResult{Failure: &insight.FetchFailure{
			Stage: StageCommits, Reason: insight.ReasonUnauthorized, Err: errors.New("bad credentials"),
		}}

		r := Compose("octocat/hello", "", commits, insight.MetricsResult{}, fixedNow)

		if r.CommitsStatus != model.SectionUnavailable {
			t.Errorf("expected unavailable, got %s", r.CommitsStatus)
		}
		if !strings.Contains(r.CommitsNote, string(insight.ReasonUnauthorized)) {
			t.Errorf("expected reason in note, got %q", r.CommitsNote)
		}
		if len(r.Commits) != 0 {
			t.Errorf("expected empty commit list")
		}
	})
}

func TestRender(t *testing.T) {
	t.Run("Empty Metrics Render Placeholder", func(t *testing.T) {
		commits := insight.CommitsResult{Commits: []model.CommitRecord{
			{SHA: "6dcb09b5b57875f334f61aebed695e2e4193db5e", Message: "Fix bug\n\nbody", Author: "octocat"},
		}}

		out := Render(Compose("octocat/hello", "", commits, insight.MetricsResult{Metrics: model.QualityMetrics{}}, fixedNow))

		if !strings.Contains(out, "- [6dcb09b] Fix bug by octocat") {
			t.Errorf("missing commit line:\n%s", out)
		}
		if !strings.Contains(out, HeaderMetrics+"\n- "+model.NoDataNote) {
			t.Errorf("missing metrics placeholder:\n%s", out)
		}
		if strings.Contains(out, "body") {
			t.Errorf("commit body should not be rendered:\n%s", out)
		}
	})

	t.Run("Metrics Sorted", func(t *testing.T) {
		metrics := insight.MetricsResult{Metrics: model.QualityMetrics{
			"vulnerabilities": "0", "bugs": "2", "code_smells": "14",
		}}

		out := Render(Compose("octocat/hello", "k", insight.CommitsResult{}, metrics, fixedNow))

		want := HeaderMetrics + "\n- Bugs: 2\n- Code Smells: 14\n- Vulnerabilities: 0"
		if !strings.HasSuffix(out, want) {
			t.Errorf("unexpected metrics rendering:\n%s", out)
		}
		if !strings.HasPrefix(out, HeaderCommits+"\n\n- "+model.NoDataNote) {
			t.Errorf("missing commits placeholder:\n%s", out)
		}
	})
}
