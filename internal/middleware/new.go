package middleware

import (
	"code-refactor-insight/pkg/log"
)

// Config configures the request guards.
type Config struct {
	RateLimitPerMin int      // 0 disables rate limiting
	AllowedIPs      []string // exact IPs or CIDR ranges; empty allows everyone
}

type Middleware struct {
	l          log.Logger
	limiter    *rateLimiter
	allowedIPs []string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		allowedIPs: cfg.AllowedIPs,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
