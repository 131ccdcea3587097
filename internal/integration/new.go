package integration

import (
	"code-refactor-insight/pkg/log"
)

// Config describes how the service advertises itself.
type Config struct {
	BaseURL      string // public URL; derived from each request when empty
	DefaultOwner string
	DefaultRepo  string
}

type Handler struct {
	l   log.Logger
	cfg Config
}

func New(l log.Logger, cfg Config) *Handler {
	return &Handler{
		l:   l,
		cfg: cfg,
	}
}
