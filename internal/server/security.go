package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/prestige/internal/logger"
)

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the X-API-Key header on every non-public path.
func AuthMiddleware(apiKey string, trustedProxies []string, limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				limiter.RecordFailedAuth(r, ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ClientLimiter counts requests and failed logins per client IP over a fixed window.
type ClientLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	authAlertAt int
	now         func() time.Time

	windowStart time.Time
	requests    map[string]int
	authFails   map[string]int
}

// LimiterOption configures a ClientLimiter.
type LimiterOption func(*ClientLimiter)

// WithWindow sets the counting window and per-IP request budget.
func WithWindow(window time.Duration, maxRequests int) LimiterOption {
	return func(l *ClientLimiter) {
		l.window = window
		l.maxRequests = maxRequests
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) LimiterOption {
	return func(l *ClientLimiter) { l.now = now }
}

func NewClientLimiter(opts ...LimiterOption) *ClientLimiter {
	l := &ClientLimiter{
		window:      defaultRateWindow,
		maxRequests: defaultRequestsPerIP,
		authAlertAt: defaultAuthFailureAlert,
		now:         time.Now,
		requests:    make(map[string]int),
		authFails:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.windowStart = l.now()
	return l
}

// rollWindow starts a new window when the current one has elapsed. Caller holds mu.
func (l *ClientLimiter) rollWindow() {
	if now := l.now(); now.Sub(l.windowStart) > l.window {
		l.windowStart = now
		l.requests = make(map[string]int)
		l.authFails = make(map[string]int)
	}
}

// Allow counts a request from ip and reports whether it is within budget.
func (l *ClientLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollWindow()
	l.requests[ip]++
	return l.requests[ip] <= l.maxRequests
}

// RecordFailedAuth counts a failed login and warns once the alert threshold is reached.
func (l *ClientLimiter) RecordFailedAuth(r *http.Request, ip string) {
	l.mu.Lock()
	l.rollWindow()
	l.authFails[ip]++
	count := l.authFails[ip]
	l.mu.Unlock()

	if count >= l.authAlertAt {
		logger.FromContext(r.Context()).Warn(LogMsgRepeatedAuthFail, "ip", ip, "count", count)
	}
}

// RateLimitMiddleware rejects clients over their request budget with 429.
func RateLimitMiddleware(trustedProxies []string, limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustedProxies)
			if !limiter.Allow(ip) {
				logger.FromContext(r.Context()).Debug(LogMsgRateLimited, "ip", ip)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the remote address, or the last X-Forwarded-For hop when
// the request arrived through a trusted proxy.
func clientIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	for _, proxy := range trustedProxies {
		if proxy != remote {
			continue
		}
		if fwd := r.Header.Get(HeaderForwardedFor); fwd != "" {
			hops := strings.Split(fwd, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}
	return remote
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(HeaderContentType, headerValueNoSniff)
		h.Set(HeaderFrameOptions, headerValueDeny)
		h.Set(HeaderReferrerPolicy, headerValueNoReferrer)
		next.ServeHTTP(w, r)
	})
}
