package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"code-refactor-insight/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw Middleware, trustedProxies ...string) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		panic(err)
	}
	r.Use(mw.Trace())
	r.POST("/tick", mw.AllowIPs(), mw.RateLimit(), func(c *gin.Context) {
		traceID := log.TraceIDFromContext(c.Request.Context())
		c.String(http.StatusOK, traceID)
	})
	return r
}

func do(r *gin.Engine, remote string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/tick", nil)
	req.RemoteAddr = remote
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTrace(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))

	t.Run("Generated", func(t *testing.T) {
		w := do(r, "10.0.0.1:1234", nil)
		id := w.Header().Get(HeaderRequestID)
		if id == "" {
			t.Fatalf("expected generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context trace id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		w := do(r, "10.0.0.1:1234", map[string]string{HeaderRequestID: "req-42"})
		if w.Header().Get(HeaderRequestID) != "req-42" || w.Body.String() != "req-42" {
			t.Errorf("expected caller id to be reused, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request per client.
	r := newEngine(New(log.NewNop(), Config{RateLimitPerMin: 10}))

	if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
	// Buckets are per client.
	if w := do(r, "10.0.0.2:1234", nil); w.Code != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", w.Code)
	}
}

func TestAllowIPs(t *testing.T) {
	cfg := Config{AllowedIPs: []string{"10.0.0.1", "192.168.0.0/16", "bad/cidr"}}

	cases := []struct {
		name    string
		trusted []string
		remote  string
		header  map[string]string
		want    int
	}{
		{"Exact Match", nil, "10.0.0.1:1234", nil, http.StatusOK},
		{"CIDR Match", nil, "192.168.4.20:1234", nil, http.StatusOK},
		{"Rejected", nil, "172.16.0.1:1234", nil, http.StatusForbidden},
		{"Forged Forwarded For", nil, "172.16.0.1:1234", map[string]string{"X-Forwarded-For": "10.0.0.1"}, http.StatusForbidden},
		{"Forged Real IP", nil, "172.16.0.1:1234", map[string]string{"X-Real-IP": "10.0.0.1"}, http.StatusForbidden},
		{"Forwarded By Trusted Proxy", []string{"172.16.0.0/12"}, "172.16.0.1:1234", map[string]string{"X-Forwarded-For": "192.168.1.1"}, http.StatusOK},
		{"Disallowed Behind Trusted Proxy", []string{"172.16.0.0/12"}, "172.16.0.1:1234", map[string]string{"X-Forwarded-For": "8.8.8.8"}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(New(log.NewNop(), cfg), tc.trusted...)
			if w := do(r, tc.remote, tc.header); w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRateLimit_ForgedHeaderSharesBucket(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{RateLimitPerMin: 10}))

	if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	// A made-up forwarding header must not open a fresh bucket.
	w := do(r, "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "203.0.113.9"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))

	for i := 0; i < 50; i++ {
		if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}
