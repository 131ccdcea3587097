package sonar

const (
	DefaultBaseURL = "https://sonarcloud.io"

	measuresPath = "/api/measures/component"
)

// DefaultMetricKeys are requested when the caller does not configure any.
var DefaultMetricKeys = []string{"code_smells", "bugs", "vulnerabilities"}
