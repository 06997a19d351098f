package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwhitby/homesim-core/internal/infrastructure/config"
	"github.com/mwhitby/homesim-core/internal/infrastructure/logging"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight
// requests to complete during shutdown.
const gracefulShutdownTimeout = 5 * time.Second

// Deps holds the dependencies required by the metrics server.
type Deps struct {
	Config    config.MetricsConfig
	Logger    *logging.Logger
	Collector prometheus.Collector
}

// Server serves the Prometheus exposition and a health probe.
//
// The server is created with New() and started with Start(); Close() shuts
// it down gracefully.
type Server struct {
	cfg      config.MetricsConfig
	logger   *logging.Logger
	registry *prometheus.Registry
	server   *http.Server
}

// New creates a metrics server with the given dependencies. The collector
// is registered on a private registry so only HomeSim series are exposed.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Collector == nil {
		return nil, fmt.Errorf("collector is required")
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(deps.Collector); err != nil {
		return nil, fmt.Errorf("registering collector: %w", err)
	}

	return &Server{
		cfg:      deps.Config,
		logger:   deps.Logger,
		registry: registry,
	}, nil
}

// Start begins serving in the background. It returns immediately; listen
// errors are logged.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       s.cfg.ReadTimeout(),
		ReadHeaderTimeout: s.cfg.ReadTimeout(),
		WriteTimeout:      s.cfg.WriteTimeout(),
		IdleTimeout:       s.cfg.IdleTimeout(),
	}

	go func() {
		s.logger.Info("metrics server starting", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server error", "error", err)
		}
	}()

	return nil
}

// buildRouter creates the HTTP router with all routes.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// handleHealth reports liveness. The simulator has no external dependencies
// to probe, so a reachable server is a healthy server.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Close shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down metrics server: %w", err)
	}
	return nil
}
