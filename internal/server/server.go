// Package server exposes the registry client as a JSON HTTP gateway.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rezonia/nip24-client/internal/config"
	"github.com/rezonia/nip24-client/internal/logger"
	"github.com/rezonia/nip24-client/internal/metrics"
	"github.com/rezonia/nip24-client/internal/model"
	xmlparser "github.com/rezonia/nip24-client/internal/parser/xml"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	RateLimit    config.RateLimitConfig
	Debug        bool
}

// Service is the registry client used to answer lookups
type Service interface {
	IsActive(ctx context.Context, kind model.Number, num string) (bool, error)
	GetInvoiceData(ctx context.Context, kind model.Number, num string) (*model.InvoiceData, error)
	GetAllData(ctx context.Context, kind model.Number, num string) (*model.AllData, error)
	GetVIESData(ctx context.Context, euvat string) (*model.VIESData, error)
	GetVATStatus(ctx context.Context, kind model.Number, num string) (*model.VATStatus, error)
	GetIBANStatus(ctx context.Context, kind model.Number, num, iban string, date time.Time) (*model.IBANStatus, error)
	GetWhitelistStatus(ctx context.Context, kind model.Number, num, iban string, date time.Time) (*model.WLStatus, error)
	SearchVATRegistry(ctx context.Context, kind model.Number, num string, date time.Time) (*model.SearchResult, error)
	GetAccountStatus(ctx context.Context) (*model.AccountStatus, error)
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	service  Service
	registry *xmlparser.Registry
	logger   *logrus.Logger
	metrics  *metrics.Metrics
	limiter  *RateLimiter
}

// Option configures the server
type Option func(*Server)

// WithLogger sets the logger used by the middleware
func WithLogger(l *logrus.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMetrics exposes m on /metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a new API server
func NewServer(config *Config, service Service, opts ...Option) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:   config,
		router:   gin.New(),
		service:  service,
		registry: xmlparser.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}

	s.router.Use(RequestID())
	s.router.Use(Recovery(s.logger))
	if config.Debug {
		s.router.Use(gin.Logger())
	}
	if config.RateLimit.RequestsPerMinute > 0 {
		s.limiter = NewRateLimiter(config.RateLimit)
		s.router.Use(s.limiter.Middleware())
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := s.router.Group("/api/v1")
	{
		// Local endpoints
		v1.GET("/validate/:kind/:number", s.handleValidate)
		v1.POST("/decode", s.handleDecode)

		// Registry lookups
		v1.GET("/active/:kind/:number", s.handleActive)
		v1.GET("/invoice/:kind/:number", s.handleInvoice)
		v1.GET("/all/:kind/:number", s.handleAll)
		v1.GET("/vat/:kind/:number", s.handleVAT)
		v1.GET("/vies/:euvat", s.handleVIES)
		v1.GET("/iban/:kind/:number/:iban", s.handleIBAN)
		v1.GET("/whitelist/:kind/:number/:iban", s.handleWhitelist)
		v1.GET("/search/:kind/:number", s.handleSearch)
		v1.GET("/account", s.handleAccount)
	}
}

// Run starts the HTTP server and shuts it down when ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}
