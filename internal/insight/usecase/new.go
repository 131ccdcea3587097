package usecase

import (
	"time"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/pkg/github"
	"code-refactor-insight/pkg/log"
	"code-refactor-insight/pkg/sonar"
)

// Options carries the static settings of the pipeline.
type Options struct {
	DefaultRepo string // "owner/repo" used when the trigger has no repository settings
	CommitCount int
	ProjectKey  string
	MetricKeys  []string
	EventName   string
	Username    string
	LogURL      string // optional mirror of every report
}

// implUseCase is the private implementation of insight.UseCase.
type implUseCase struct {
	l         log.Logger
	github    github.IGitHub // nil when no token is configured
	sonar     sonar.ISonar   // nil when SonarCloud is not configured
	sender    insight.Sender
	scheduler insight.Scheduler
	opts      Options
	now       func() time.Time
}

var _ insight.UseCase = (*implUseCase)(nil)

// New creates a new insight UseCase implementation.
func New(
	l log.Logger,
	gh github.IGitHub,
	sc sonar.ISonar,
	sender insight.Sender,
	scheduler insight.Scheduler,
	opts Options,
) *implUseCase {
	if opts.CommitCount <= 0 {
		opts.CommitCount = DefaultCommitCount
	}
	if opts.EventName == "" {
		opts.EventName = DefaultEventName
	}
	if opts.Username == "" {
		opts.Username = DefaultUsername
	}

	return &implUseCase{
		l:         l,
		github:    gh,
		sonar:     sc,
		sender:    sender,
		scheduler: scheduler,
		opts:      opts,
		now:       time.Now,
	}
}
