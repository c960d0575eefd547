// Package api provides the HTTP REST API server for datwatch.
//
// It exposes the dashboard views (summary, per-company valuation,
// productivity, portfolio, preconditions, theses), the news and filings
// feeds, the audit log, and a WebSocket stream of snapshot refreshes.
package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/reservelabs/datwatch/internal/audit"
	"github.com/reservelabs/datwatch/internal/config"
	"github.com/reservelabs/datwatch/internal/dashboard"
	"github.com/reservelabs/datwatch/internal/universe"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	cfg    *config.Config
	svc    *dashboard.Service
	store  *audit.Store // nil disables the audit endpoints
	uni    *universe.Universe
	wsHub  *WSHub
	log    *zap.Logger
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, svc *dashboard.Service, store *audit.Store, uni *universe.Universe, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	srv := &Server{
		cfg:   cfg,
		svc:   svc,
		store: store,
		uni:   uni,
		wsHub: NewWSHub(log),
		log:   log,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown and the
// background snapshot refresh loop.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go s.wsHub.Run()
	go s.refreshLoop(refreshCtx)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	s.log.Info("shutting down server")
	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

// refreshLoop rebuilds the dashboard snapshot on the configured cadence
// and pushes each refresh to connected WebSocket clients.
func (s *Server) refreshLoop(ctx context.Context) {
	interval := time.Duration(s.cfg.Fetch.RefreshInterval) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	refresh := func() {
		fetchCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		summary, err := s.svc.Snapshot(fetchCtx)
		if err != nil {
			s.log.Warn("snapshot refresh failed", zap.Error(err))
			return
		}
		s.wsHub.Broadcast(WSMessage{Type: "summary_refresh", Data: summary})
	}

	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/companies", s.handleCompanies)
		r.Get("/companies/{ticker}", s.handleCompany)
		r.Get("/productivity/{asset}", s.handleProductivity)
		r.Get("/portfolio", s.handlePortfolio)
		r.Get("/preconditions", s.handlePreconditions)
		r.Get("/theses", s.handleTheses)
		r.Get("/theses/{id}", s.handleThesis)
		r.Get("/news", s.handleNews)
		r.Get("/filings/{ticker}", s.handleFilings)

		r.Get("/audit", s.handleAuditSummary)
		r.Get("/audit/crosscheck", s.handleAuditCrossCheck)
		r.Get("/audit/{ticker}", s.handleAuditTicker)
		r.Post("/audit/{ticker}", s.handleAuditLog)

		r.Get("/config", s.handleConfig)
		r.Get("/config/keys", s.handleConfigKeys)

		r.Get("/ws", s.handleWebSocket)
	})

	return r
}

// requestLogger logs each request through zap at debug level, with
// slow and failed requests promoted to info/warn.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
			}
			switch {
			case ww.Status() >= 500:
				log.Warn("request failed", fields...)
			case time.Since(start) > 5*time.Second:
				log.Info("slow request", fields...)
			default:
				log.Debug("request", fields...)
			}
		})
	}
}
