package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/model"
)

func validateReturnURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return insight.ErrMissingReturnURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return insight.ErrInvalidReturnURL
	}
	return nil
}

func validateSettings(settings []model.Setting) error {
	for _, s := range settings {
		if s.Required && s.Value() == "" {
			return fmt.Errorf("%w: %s", insight.ErrMissingRequiredSetting, s.Label)
		}
	}
	return nil
}

// resolveRepo prefers repository settings from the trigger over the
// configured default.
func (uc *implUseCase) resolveRepo(req model.TriggerRequest) (model.RepoCoordinates, error) {
	repo := parseRepo(uc.opts.DefaultRepo)

	if s, ok := req.Setting(LabelsRepository...); ok && s.Value() != "" {
		repo = parseRepo(s.Value())
	}
	if s, ok := req.Setting(LabelsOwner...); ok && s.Value() != "" {
		repo.Owner = s.Value()
	}
	if s, ok := req.Setting(LabelsRepo...); ok && s.Value() != "" {
		repo.Name = s.Value()
	}

	if !repo.Valid() {
		return model.RepoCoordinates{}, insight.ErrMissingRepository
	}
	return repo, nil
}

func (uc *implUseCase) resolveProjectKey(req model.TriggerRequest) string {
	if s, ok := req.Setting(LabelsProjectKey...); ok && s.Value() != "" {
		return s.Value()
	}
	return uc.opts.ProjectKey
}

// parseRepo splits "owner/repo". A GitHub URL is accepted too.
func parseRepo(raw string) model.RepoCoordinates {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "https://github.com/")
	raw = strings.TrimSuffix(strings.TrimSuffix(raw, "/"), ".git")

	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return model.RepoCoordinates{}
	}
	return model.RepoCoordinates{Owner: strings.TrimSpace(parts[0]), Name: strings.TrimSpace(parts[1])}
}

// firstLine returns the commit subject.
func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}
