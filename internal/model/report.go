package model

import "time"

// CommitRecord is a normalized GitHub commit.
type CommitRecord struct {
	SHA       string    `json:"sha"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// ShortSHA returns the 7-character abbreviated commit hash.
func (c CommitRecord) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// QualityMetrics maps a metric key (e.g. "bugs") to its reported value.
type QualityMetrics map[string]string

// SectionStatus tells apart an empty section from a failed fetch.
type SectionStatus string

const (
	SectionOK          SectionStatus = "ok"
	SectionEmpty       SectionStatus = "empty"
	SectionUnavailable SectionStatus = "unavailable"
)

// NoDataNote is rendered in place of a section that has nothing to show.
const NoDataNote = "No data available"

// Report is the merged result of one trigger cycle.
type Report struct {
	Repository    string         `json:"repository"`
	ProjectKey    string         `json:"project_key,omitempty"`
	Commits       []CommitRecord `json:"commits"`
	CommitsStatus SectionStatus  `json:"commits_status"`
	CommitsNote   string         `json:"commits_note,omitempty"`
	Metrics       QualityMetrics `json:"metrics"`
	MetricsStatus SectionStatus  `json:"metrics_status"`
	MetricsNote   string         `json:"metrics_note,omitempty"`
	Summary       string         `json:"summary"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

// HasData reports whether at least one section carries data.
func (r Report) HasData() bool {
	return r.CommitsStatus == SectionOK || r.MetricsStatus == SectionOK
}
