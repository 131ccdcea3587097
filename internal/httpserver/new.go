package httpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/internal/integration"
	"code-refactor-insight/internal/middleware"
	"code-refactor-insight/pkg/log"
)

// Stopper drains background work on shutdown. *worker.Pool satisfies it.
type Stopper interface {
	Stop(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Insight domain
	insightUC insight.UseCase
	pool      Stopper
	mw        middleware.Middleware

	// Integration document
	integration *integration.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Peers allowed to set X-Forwarded-For / X-Real-IP. Empty trusts none.
	TrustedProxies []string

	InsightUC   insight.UseCase
	Pool        Stopper
	Middleware  middleware.Config
	Integration integration.Config
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		insightUC:   cfg.InsightUC,
		pool:        cfg.Pool,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mw = middleware.New(logger, cfg.Middleware)
	srv.integration = integration.New(logger, cfg.Integration)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.insightUC == nil {
		return errors.New("insight usecase is required")
	}
	return nil
}
