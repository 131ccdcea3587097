package model

import "testing"

func TestSettingValue(t *testing.T) {
	cases := []struct {
		name string
		def  any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "  octocat ", "octocat"},
		{"Number", 5, "5"},
		{"Bool", true, "true"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := (Setting{Default: tc.def}).Value(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTriggerRequestSetting(t *testing.T) {
	req := TriggerRequest{Settings: []Setting{
		{Label: "interval", Default: "* * * * *"},
		{Label: "Github_repo", Default: "Hello-World"},
	}}

	s, ok := req.Setting("repo", "github_repo")
	if !ok || s.Value() != "Hello-World" {
		t.Errorf("expected case-insensitive match, got %+v %t", s, ok)
	}
	if _, ok := req.Setting("github_username"); ok {
		t.Errorf("expected no match")
	}
}

func TestReport(t *testing.T) {
	if (CommitRecord{SHA: "abc"}).ShortSHA() != "abc" {
		t.Errorf("short sha must not panic on short hashes")
	}
	if (CommitRecord{SHA: "6dcb09b5b57875f"}).ShortSHA() != "6dcb09b" {
		t.Errorf("unexpected short sha")
	}

	r := Report{CommitsStatus: SectionUnavailable, MetricsStatus: SectionEmpty}
	if r.HasData() {
		t.Errorf("expected no data")
	}
	r.MetricsStatus = SectionOK
	if !r.HasData() {
		t.Errorf("expected data")
	}
	if !(RepoCoordinates{Owner: "a", Name: "b"}).Valid() || (RepoCoordinates{Owner: "a"}).Valid() {
		t.Errorf("unexpected Valid result")
	}
}
