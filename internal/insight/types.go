package insight

import (
	"fmt"

	"code-refactor-insight/internal/model"
)

// --- UseCase Inputs ---

type TriggerInput struct {
	Request model.TriggerRequest
}

type ProcessInput struct {
	TaskID     string
	ChannelID  string
	ReturnURL  string
	Repo       model.RepoCoordinates
	ProjectKey string
}

// --- UseCase Outputs ---

type ScheduleOutput struct {
	TaskID     string
	Repository string
}

type ProcessOutput struct {
	Report    model.Report
	Delivered bool
	Attempts  int
}

// --- Fetch results ---

// FailureReason classifies why an upstream fetch produced no data.
type FailureReason string

const (
	ReasonNotConfigured FailureReason = "not_configured"
	ReasonUnauthorized  FailureReason = "unauthorized"
	ReasonRateLimited   FailureReason = "rate_limited"
	ReasonNetwork       FailureReason = "network"
	ReasonUpstream      FailureReason = "upstream"
)

// FetchFailure records a degraded fetch. It is data, not a propagated error.
type FetchFailure struct {
	Stage  string
	Reason FailureReason
	Err    error
}

func (f *FetchFailure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Stage, f.Reason, f.Err)
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// CommitsResult is the outcome of the commit fetch. Failure is nil on success,
// in which case an empty Commits means the repository had nothing to report.
type CommitsResult struct {
	Commits []model.CommitRecord
	Failure *FetchFailure
}

// MetricsResult is the outcome of the analysis fetch.
type MetricsResult struct {
	Metrics model.QualityMetrics
	Failure *FetchFailure
}

// Message is the envelope posted to the return URL.
type Message struct {
	EventName string        `json:"event_name"`
	Message   string        `json:"message"`
	Status    string        `json:"status"`
	Username  string        `json:"username"`
	Report    *model.Report `json:"report,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
