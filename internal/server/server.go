// Package server assembles the HTTP router, middleware stack and lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/prestige/docs"
	"github.com/osse101/prestige/internal/handler"
	"github.com/osse101/prestige/internal/logger"
	"github.com/osse101/prestige/internal/metrics"
	"github.com/osse101/prestige/internal/session"
)

// Options configure NewServer.
type Options struct {
	Port           int
	APIKey         string
	Version        string
	TrustedProxies []string
	Limiter        *ClientLimiter
}

type Server struct {
	httpServer *http.Server
	service    session.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, service session.Service) *Server {
	limiter := opts.Limiter
	if limiter == nil {
		limiter = NewClientLimiter()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, limiter, service),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		service: service,
	}
}

// NewRouter builds the route tree. Middleware runs outermost first.
func NewRouter(opts Options, limiter *ClientLimiter, service session.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(service))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	players := handler.NewPlayerHandlers(service)
	effarig := handler.NewEffarigHandlers(service)
	dilation := handler.NewDilationHandlers(service)

	r.Route("/api/v1/players", func(r chi.Router) {
		r.Post("/", players.HandleCreatePlayer())

		r.Route("/{"+handler.ParamPlayerID+"}", func(r chi.Router) {
			r.Get("/", players.HandleGetPlayer())
			r.Delete("/", players.HandleDeletePlayer())
			r.Post("/credit", players.HandleCredit())
			r.Post("/effects", players.HandleEffects())

			r.Route("/effarig", func(r chi.Router) {
				r.Post("/unlocks/{"+handler.ParamKey+"}/purchase", effarig.HandlePurchaseUnlock())
				r.Post("/unlocks/{"+handler.ParamKey+"}/grant", effarig.HandleGrantUnlock())
				r.Post("/run/start", effarig.HandleStartRun())
				r.Post("/run/stop", effarig.HandleStopRun())
				r.Post("/events", effarig.HandleGameEvent())
			})

			r.Route("/dilation", func(r chi.Router) {
				r.Post("/upgrades/{"+handler.ParamKey+"}/purchase", dilation.HandlePurchase())
				r.Post("/reset", dilation.HandleReset())
			})
		})
	})

	return r
}

// statusRecorder captures the status code written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (rw *statusRecorder) WriteHeader(status int) {
	if !rw.written {
		rw.status = status
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuiet(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware assigns a request id (reusing X-Request-ID when sent)
// and logs each request with secrets redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{redactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean shutdown.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
