package mcpsrv

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// WrapMCPHandler guards next with the origin allowlist and a shared token
// bucket. Requests without an Origin header are not subject to the allowlist.
func WrapMCPHandler(next http.Handler, cfg Config) http.Handler {
	rps := cfg.RPS
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	limiter := newRequestLimiter(rps, burst, time.Now)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
			if _, ok := allowed[origin]; !ok {
				http.Error(w, "origin not allowed", http.StatusForbidden)
				return
			}
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Mcp-Protocol-Version, Mcp-Session-Id")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestLimiter is a token bucket shared by every request to the endpoint.
type requestLimiter struct {
	lim *rate.Limiter
	now func() time.Time
}

func newRequestLimiter(rps float64, burst int, now func() time.Time) *requestLimiter {
	return &requestLimiter{lim: rate.NewLimiter(rate.Limit(rps), burst), now: now}
}

func (l *requestLimiter) Allow() bool {
	return l.lim.AllowN(l.now(), 1)
}
