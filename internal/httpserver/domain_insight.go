package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	insightHTTP "code-refactor-insight/internal/insight/delivery/http"
)

// setupInsightDomain wires the trigger endpoint to the insight use case.
func (srv *HTTPServer) setupInsightDomain(ctx context.Context, r gin.IRouter) error {
	h := insightHTTP.New(srv.l, srv.insightUC)

	// Registers POST /tick
	insightHTTP.RegisterRoutes(r, h, srv.mw)

	srv.l.Infof(ctx, "Insight domain registered at POST /tick")
	return nil
}
