package http

import (
	"errors"
	"testing"

	"code-refactor-insight/internal/insight"
)

func TestTickReqValidate(t *testing.T) {
	cases := []struct {
		name      string
		returnURL string
		wantErr   bool
	}{
		{"HTTPS", "https://ping.telex.im/v1/return/c1", false},
		{"HTTP With Port", "http://localhost:9000/hook", false},
		{"Surrounding Spaces", "  https://example.com/hook ", false},
		{"Relative", "/hook", true},
		{"No Scheme", "example.com/hook", true},
		{"Unsupported Scheme", "ftp://example.com/hook", true},
		{"Unparseable", "http://[::1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tickReq{ChannelID: "c1", ReturnURL: tc.returnURL}.validate()
			if tc.wantErr && !errors.Is(err, insight.ErrInvalidReturnURL) {
				t.Errorf("expected ErrInvalidReturnURL, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
