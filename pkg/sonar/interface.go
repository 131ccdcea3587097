package sonar

import "context"

// ISonar fetches quality measures of a project.
// Implementations are safe for concurrent use.
type ISonar interface {
	GetMeasures(ctx context.Context, projectKey string, metricKeys []string) (map[string]string, error)
}

var _ ISonar = (*Client)(nil)
