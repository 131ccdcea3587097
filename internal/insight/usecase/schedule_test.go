package usecase

import (
	"context"
	"errors"
	"testing"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
	"code-refactor-insight/pkg/log"
	"code-refactor-insight/pkg/worker"
)

func newScheduleUC(s *mockScheduler) *implUseCase {
	return New(log.NewNop(), &mockGitHub{}, nil, &mockSender{}, s, Options{
		DefaultRepo: "codenamemomi/CodeRefactorInsight_HNG12_stage3",
		ProjectKey:  "default_key",
	})
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Trigger Enqueues One Job", func(t *testing.T) {
		s := &mockScheduler{}
		uc := newScheduleUC(s)

		out, err := uc.Schedule(ctx, insight.TriggerInput{Request: model.TriggerRequest{
			ChannelID: "c1",
			ReturnURL: "https://ping.example.com/v1/return/c1",
			Settings: []model.Setting{
				{Label: "interval", Type: "text", Required: true, Default: "* * * * *"},
			},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskID == "" || out.Repository != "codenamemomi/CodeRefactorInsight_HNG12_stage3" {
			t.Errorf("unexpected output %+v", out)
		}
		if len(s.jobs) != 1 || s.jobs[0].ID != out.TaskID || s.jobs[0].Name != JobName {
			t.Fatalf("expected one job for task %s, got %+v", out.TaskID, s.jobs)
		}
	})

	t.Run("Settings Override Repository", func(t *testing.T) {
		s := &mockScheduler{}
		uc := newScheduleUC(s)

		out, err := uc.Schedule(ctx, insight.TriggerInput{Request: model.TriggerRequest{
			ChannelID: "c1",
			ReturnURL: "http://example.com",
			Settings: []model.Setting{
				{Label: "Github_username", Type: "text", Required: true, Default: "octocat"},
				{Label: "Github_repo", Type: "text", Required: true, Default: "Hello-World"},
			},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Repository != "octocat/Hello-World" {
			t.Errorf("expected octocat/Hello-World, got %s", out.Repository)
		}
	})

	t.Run("Repository Setting", func(t *testing.T) {
		uc := newScheduleUC(&mockScheduler{})

		out, err := uc.Schedule(ctx, insight.TriggerInput{Request: model.TriggerRequest{
			ReturnURL: "http://example.com",
			Settings:  []model.Setting{{Label: "repository", Default: "https://github.com/golang/go.git"}},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Repository != "golang/go" {
			t.Errorf("expected golang/go, got %s", out.Repository)
		}
	})

	cases := []struct {
		name string
		req  model.TriggerRequest
		want error
	}{
		{
			name: "Missing Return URL",
			req:  model.TriggerRequest{ChannelID: "c1"},
			want: insight.ErrMissingReturnURL,
		},
		{
			name: "Relative Return URL",
			req:  model.TriggerRequest{ChannelID: "c1", ReturnURL: "/callback"},
			want: insight.ErrInvalidReturnURL,
		},
		{
			name: "Unsupported Scheme",
			req:  model.TriggerRequest{ChannelID: "c1", ReturnURL: "ftp://example.com/x"},
			want: insight.ErrInvalidReturnURL,
		},
		{
			name: "Missing Required Setting",
			req: model.TriggerRequest{ChannelID: "c1", ReturnURL: "http://example.com", Settings: []model.Setting{
				{Label: "interval", Type: "text", Required: true, Default: ""},
			}},
			want: insight.ErrMissingRequiredSetting,
		},
		{
			name: "Incomplete Repository",
			req: model.TriggerRequest{ChannelID: "c1", ReturnURL: "http://example.com", Settings: []model.Setting{
				{Label: "repository", Default: "just-a-name"},
			}},
			want: insight.ErrMissingRepository,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &mockScheduler{}
			uc := newScheduleUC(s)

			_, err := uc.Schedule(ctx, insight.TriggerInput{Request: tc.req})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(s.jobs) != 0 {
				t.Errorf("no job must be scheduled on invalid input, got %d", len(s.jobs))
			}
		})
	}

	t.Run("Queue Full", func(t *testing.T) {
		uc := newScheduleUC(&mockScheduler{err: worker.ErrQueueFull})

		_, err := uc.Schedule(ctx, insight.TriggerInput{Request: model.TriggerRequest{
			ChannelID: "c1", ReturnURL: "http://example.com",
		}})
		if !errors.Is(err, insight.ErrBusy) {
			t.Fatalf("expected ErrBusy, got %v", err)
		}
	})

	t.Run("Job Runs Pipeline", func(t *testing.T) {
		s := &mockScheduler{}
		sender := &mockSender{}
		uc := New(log.NewNop(), &mockGitHub{}, nil, sender, s, Options{DefaultRepo: "octocat/hello"})

		_, err := uc.Schedule(ctx, insight.TriggerInput{Request: model.TriggerRequest{
			ChannelID: "c1", ReturnURL: "http://example.com/hook",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s.jobs[0].Run(context.Background())

		if len(sender.urls) != 1 || sender.urls[0] != "http://example.com/hook" {
			t.Errorf("expected delivery to return URL, got %v", sender.urls)
		}
	})
}
