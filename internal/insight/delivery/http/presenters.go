package http

import (
	"net/url"
	"strings"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
)

// --- Request DTOs ---

type settingReq struct {
	Label    string `json:"label"    binding:"required"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Default  any    `json:"default"`
}

type tickReq struct {
	ChannelID string       `json:"channel_id" binding:"required"`
	ReturnURL string       `json:"return_url" binding:"required"`
	Settings  []settingReq `json:"settings"   binding:"dive"`
}

// validate rejects a return_url that cannot be posted to.
func (r tickReq) validate() error {
	u, err := url.Parse(strings.TrimSpace(r.ReturnURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return insight.ErrInvalidReturnURL
	}
	return nil
}

func (r tickReq) toInput() insight.TriggerInput {
	settings := make([]model.Setting, 0, len(r.Settings))
	for _, s := range r.Settings {
		settings = append(settings, model.Setting{
			Label:    s.Label,
			Type:     s.Type,
			Required: s.Required,
			Default:  s.Default,
		})
	}

	return insight.TriggerInput{Request: model.TriggerRequest{
		ChannelID: r.ChannelID,
		ReturnURL: strings.TrimSpace(r.ReturnURL),
		Settings:  settings,
	}}
}

// --- Response DTOs ---

type tickResp struct {
	Status     string `json:"status"`
	TaskID     string `json:"task_id"`
	Repository string `json:"repository"`
}

func (h *handler) newTickResp(o insight.ScheduleOutput) tickResp {
	return tickResp{
		Status:     StatusAccepted,
		TaskID:     o.TaskID,
		Repository: o.Repository,
	}
}

const StatusAccepted = "accepted"
