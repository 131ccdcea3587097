package model

import (
	"fmt"
	"strings"
)

// Setting is one configurable field of the integration, echoed back by the
// caller on every trigger.
type Setting struct {
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Default  any    `json:"default"`
}

// Value returns the setting default as a trimmed string. Missing defaults
// yield "".
func (s Setting) Value() string {
	if s.Default == nil {
		return ""
	}
	switch v := s.Default.(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// TriggerRequest is the inbound payload that starts one report cycle.
type TriggerRequest struct {
	ChannelID string
	ReturnURL string
	Settings  []Setting
}

// Setting returns the first setting whose label matches one of labels,
// ignoring case.
func (r TriggerRequest) Setting(labels ...string) (Setting, bool) {
	for _, s := range r.Settings {
		for _, label := range labels {
			if strings.EqualFold(s.Label, label) {
				return s, true
			}
		}
	}
	return Setting{}, false
}

// RepoCoordinates identifies a GitHub repository.
type RepoCoordinates struct {
	Owner string
	Name  string
}

func (r RepoCoordinates) String() string {
	return r.Owner + "/" + r.Name
}

// Valid reports whether both parts are present.
func (r RepoCoordinates) Valid() bool {
	return r.Owner != "" && r.Name != ""
}
