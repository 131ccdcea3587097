package middleware

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"code-refactor-insight/pkg/response"
)

// AllowIPs rejects callers outside the configured allowlist with 403.
// The caller is gin's ClientIP, so forwarding headers only count when the
// peer is a trusted proxy of the engine.
func (m Middleware) AllowIPs() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := validateIPAddress(c.ClientIP(), m.allowedIPs); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.AllowIPs: %v", err)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// RateLimit throttles each client IP with a token bucket and answers 429
// once the bucket is empty.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// validateIPAddress checks if ip is whitelisted
func validateIPAddress(ip string, allowedIPs []string) error {
	if len(allowedIPs) == 0 {
		return nil
	}

	parsed := net.ParseIP(ip)

	for _, allowed := range allowedIPs {
		if ip == allowed {
			return nil
		}

		// CIDR range
		if strings.Contains(allowed, "/") {
			_, ipNet, err := net.ParseCIDR(allowed)
			if err != nil {
				continue
			}
			if parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("IP %s not whitelisted", ip)
}

// rateLimiter keeps one token bucket per client, evicted after inactivity.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked clients
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
