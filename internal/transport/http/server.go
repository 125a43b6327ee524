package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shortlabs/linkd/internal/service"
)

// Server represents the HTTP server
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
}

// NewServer creates a new HTTP server
func NewServer(links service.LinkService, port string, verbose bool) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := NewMetrics(registry)
	handler := NewHandler(links, metrics)

	mux := http.NewServeMux()

	// API endpoints
	mux.Handle("/api/links", metrics.Instrument("/api/links", http.HandlerFunc(handler.LinksHandler)))
	mux.Handle("/api/links/", metrics.Instrument("/api/links/{code}", http.HandlerFunc(handler.LinkDetailHandler)))

	// Operational endpoints
	mux.HandleFunc("/healthz", handler.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Redirect endpoint (catch-all)
	mux.Handle("/", metrics.Instrument("/{code}", http.HandlerFunc(handler.Redirect)))

	var finalHandler http.Handler = mux
	if verbose {
		loggingMiddleware := NewLoggingMiddleware(verbose)
		finalHandler = loggingMiddleware.Middleware(finalHandler)
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("Server starting on port %s", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Server shutting down...")
	return s.server.Shutdown(ctx)
}

// Port returns the server port
func (s *Server) Port() string {
	return s.port
}

// Handler returns the server handler (useful for testing)
func (s *Server) Handler() *Handler {
	return s.handler
}
