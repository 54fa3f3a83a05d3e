// Package server exposes session.Registry over HTTP with a chi router.
//
// Each client creates its own session (POST /api/v1/sessions) and then
// issues graph mutations and algorithm runs against it. Every response body
// is JSON except /export, which returns DOT, Mermaid or JSON as requested.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/mstlab/config"
	"github.com/katalvlaran/mstlab/observability"
	"github.com/katalvlaran/mstlab/session"
)

// limiterIdle is how long an unused per-IP limiter is kept.
const limiterIdle = 10 * time.Minute

// Server is the mstlab HTTP server.
type Server struct {
	reg *session.Registry
	cfg config.ServerConfig
	log *zap.Logger
	srv *http.Server

	limiters sync.Map // map[string]*ipLimiter
}

type ipLimiter struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New returns a server over reg.
func New(reg *session.Registry, cfg config.ServerConfig, log *zap.Logger) *Server {
	return &Server{reg: reg, cfg: cfg, log: observability.OrNop(log)}
}

// Handler builds the router with its middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(limitBody)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1/sessions", func(r chi.Router) {
		r.Use(s.rateLimiter)
		r.Post("/", s.createSession)
		r.Route("/{sid}", func(r chi.Router) {
			r.Use(s.withSession)
			r.Delete("/", s.deleteSession)
			r.Get("/graph", s.getGraph)
			r.Delete("/graph", s.resetGraph)
			r.Post("/graph/generate", s.generate)
			r.Post("/nodes", s.addNode)
			r.Delete("/nodes/{node}", s.removeNode)
			r.Get("/nodes/{node}/neighbors", s.neighbors)
			r.Post("/edges", s.addEdge)
			r.Delete("/edges/{from}/{to}", s.removeEdge)
			r.Get("/bfs", s.traverse(traverseBFS))
			r.Get("/dfs", s.traverse(traverseDFS))
			r.Get("/mst/{method}", s.mst)
			r.Get("/export", s.export)
		})
	})

	return r
}

// Start serves on cfg.Listen until ctx is cancelled, then shuts down
// gracefully. Idle sessions and limiters are swept once a minute.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go s.sweepLoop(ctx, time.Minute)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("listen", s.cfg.Listen),
			zap.Float64("rate_limit", s.cfg.RateLimit), zap.Int("burst", s.cfg.Burst),
			zap.Duration("session_ttl", s.cfg.SessionTTL))
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down server")
		return s.srv.Shutdown(shutdownCtx)
	}
}

// sweepLoop expires idle sessions and stale limiters every interval.
func (s *Server) sweepLoop(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.sweep(now)
		}
	}
}

func (s *Server) sweep(now time.Time) {
	s.reg.Sweep(s.cfg.SessionTTL)
	s.limiters.Range(func(key, value any) bool {
		il := value.(*ipLimiter)
		il.mu.Lock()
		stale := now.Sub(il.lastSeen) > limiterIdle
		il.mu.Unlock()
		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}
