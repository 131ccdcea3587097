package usecase

import (
	"context"
	"sync"

	"code-refactor-insight/pkg/github"
	"code-refactor-insight/pkg/webhook"
	"code-refactor-insight/pkg/worker"
)

// mockGitHub implements github.IGitHub
type mockGitHub struct {
	commits []github.Commit
	err     error
	calls   int
	owner   string
	repo    string
}

func (m *mockGitHub) ListRecentCommits(ctx context.Context, owner, repo string, count int) ([]github.Commit, error) {
	m.calls++
	m.owner, m.repo = owner, repo
	return m.commits, m.err
}

// mockSonar implements sonar.ISonar
type mockSonar struct {
	measures map[string]string
	err      error
}

func (m *mockSonar) GetMeasures(ctx context.Context, projectKey string, metricKeys []string) (map[string]string, error) {
	return m.measures, m.err
}

// mockScheduler records submitted jobs instead of running them.
type mockScheduler struct {
	mu   sync.Mutex
	jobs []worker.Job
	err  error
}

func (m *mockScheduler) Submit(job worker.Job) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return nil
}

// mockSender captures every payload.
type mockSender struct {
	mu       sync.Mutex
	urls     []string
	payloads []any
	err      error
}

func (m *mockSender) PostJSON(ctx context.Context, url string, payload any) (webhook.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	m.payloads = append(m.payloads, payload)
	if m.err != nil {
		return webhook.Result{Attempts: 2}, m.err
	}
	return webhook.Result{Attempts: 1, StatusCode: 200}, nil
}
