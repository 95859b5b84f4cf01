// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the tenant-scoped content API over HTTP. Every
// request is handled independently; the only intra-request concurrency is the
// parallel query batch a page issues before responding.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/labsite/internal/content"
	"github.com/pdiddy/labsite/internal/tenant"
	"github.com/pdiddy/labsite/pkg/types"
)

// Server wires the resolver, the store client, and the HTTP surface together.
// Configuration is fixed at construction; request handling reads it but never
// mutates it.
type Server struct {
	store     *content.Client
	resolver  *tenant.Resolver
	tenantCfg types.TenantConfig
	logger    *zap.Logger

	registry *prometheus.Registry
	reqCount *prometheus.CounterVec
	reqDur   *prometheus.HistogramVec
}

// New builds a server from immutable configuration.
func New(store *content.Client, tenantCfg types.TenantConfig, logger *zap.Logger) *Server {
	s := &Server{
		store:     store,
		resolver:  tenant.NewResolver(tenantCfg),
		tenantCfg: tenantCfg,
		logger:    logger,
		registry:  prometheus.NewRegistry(),
	}

	s.reqCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "labsite",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests by handler, method, and response code.",
	}, []string{"handler", "method", "status"})

	s.reqDur = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "labsite",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by handler, method, and response code.",
	}, []string{"handler", "method", "status"})

	s.registry.MustRegister(s.reqCount, s.reqDur)
	return s
}

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(tenant.Propagate(s.tenantCfg))
	r.Use(s.observe)

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", s.handleSettings)
		r.Get("/metadata", s.handleMetadata)
		r.Get("/home", s.handleHome)
		r.Get("/publications", s.handlePublications)
		r.Get("/people", s.handlePeople)
		r.Get("/news", s.handleNews)
		r.Get("/news/{slug}", s.handleNewsArticle)
		r.Get("/research", s.handleResearch)
		r.Get("/contact", s.handleContact)
		r.Get("/book", s.handleBook)
		r.Get("/gallery", s.handleGallery)
		r.Get("/legal/{kind}", s.handleLegal)
		r.Get("/theme.css", s.handleThemeCSS)
	})

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// facade builds the per-request query catalog from the resolved tenant.
func (s *Server) facade(r *http.Request) *content.Facade {
	id, ok := s.resolver.Resolve(r)
	return content.NewFacade(content.NewGateway(s.store, s.tenantCfg, id, ok))
}

// statusWriter captures the response code for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// observe logs each request and records count and duration metrics.
func (s *Server) observe(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		labels := prometheus.Labels{
			"handler": "labsite",
			"method":  r.Method,
			"status":  strconv.Itoa(sw.code),
		}
		s.reqCount.With(labels).Inc()
		s.reqDur.With(labels).Observe(elapsed.Seconds())

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.code),
			zap.Duration("took", elapsed))
	}
	return http.HandlerFunc(fn)
}
