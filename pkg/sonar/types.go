package sonar

// MeasuresResponse is the body of GET /api/measures/component.
type MeasuresResponse struct {
	Component Component `json:"component"`
}

// Component is the analysed project.
type Component struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Qualifier string    `json:"qualifier"`
	Measures  []Measure `json:"measures"`
}

// Measure is a single metric value. Rating metrics come back as numeric
// strings ("1.0" = A).
type Measure struct {
	Metric    string `json:"metric"`
	Value     string `json:"value"`
	BestValue bool   `json:"bestValue,omitempty"`
}

// ErrorResponse is the error body returned by the SonarCloud web API.
type ErrorResponse struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}
