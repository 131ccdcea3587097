package integration

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Get godoc
// @Summary     Integration document
// @Description Returns the Telex integration description. tick_url is app_url + "/tick".
// @Tags        Integration
// @Produce     json
// @Success     200 {object} Document
// @Router      /integration.json [GET]
func (h *Handler) Get(c *gin.Context) {
	appURL := h.appURL(c.Request)
	h.l.Debugf(c.Request.Context(), "internal.integration.Get: serving document for %s", appURL)

	c.JSON(http.StatusOK, Build(appURL, h.cfg.DefaultOwner, h.cfg.DefaultRepo))
}

// RegisterRoutes maps the integration document route.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/integration.json", h.Get)
}

// appURL prefers the configured base URL, falling back to the request's
// scheme and host.
func (h *Handler) appURL(r *http.Request) string {
	if h.cfg.BaseURL != "" {
		return h.cfg.BaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto, ok := forwardedScheme(r.Header.Get("X-Forwarded-Proto")); ok {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// forwardedScheme takes the first hop of X-Forwarded-Proto. Anything other
// than http or https is ignored.
func forwardedScheme(header string) (string, bool) {
	first, _, _ := strings.Cut(header, ",")
	switch proto := strings.ToLower(strings.TrimSpace(first)); proto {
	case "http", "https":
		return proto, true
	default:
		return "", false
	}
}
