// Package server exposes date conversion over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/rabitt1ove/ethiocal"
	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/config"
	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/logger"
)

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	logger  *logger.Logger
	conv    *ethiocal.Converter
	metrics *metrics
}

// New creates a server that converts with conv.
func New(cfg *config.Config, conv *ethiocal.Converter, appLogger *logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator(conv)
	e.HTTPErrorHandler = errorHandler(appLogger)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s := &Server{
		echo:   e,
		config: cfg,
		logger: appLogger.WithComponent("server"),
		conv:   conv,
	}

	// Metrics wrap everything else so rate limited and failed requests are
	// counted with their final status.
	if cfg.Metrics.Enabled {
		s.setupMetrics()
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())

	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1e6,
				"remote_ip", values.RemoteIP,
				"request_id", values.RequestID,
			}
			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Warnw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}
			return nil
		},
	}))

	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.config.Security.AllowedOrigins(),
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))

	if n := s.config.Security.RateLimitRequests; n > 0 {
		s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/healthz" || c.Path() == "/metrics"
			},
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(
				middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(n), Burst: n, ExpiresIn: 3 * time.Minute},
			),
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
			},
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			},
		}))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	h := &handler{conv: s.conv, logger: s.logger, metrics: s.metrics}

	s.echo.GET("/healthz", s.healthCheck)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/gregorian", h.toGregorian)
	v1.GET("/ethiopian", h.toEthiopian)
	v1.GET("/jdn/:jdn", h.fromJDN)
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": s.config.App.Version,
		"method":  s.conv.Method().String(),
	})
}

// ServeHTTP makes the server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on address and serves until Shutdown is called.
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// errorHandler renders every error as JSON.
func errorHandler(appLogger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		var ve validator.ValidationErrors
		switch {
		case errors.As(err, &he):
			code = he.Code
			msg = fmt.Sprint(he.Message)
		case errors.As(err, &ve):
			code = http.StatusBadRequest
			msg = ve.Error()
		}

		if code >= http.StatusInternalServerError {
			appLogger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, errorResponse{
				Error:     msg,
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
			})
		}
		if err != nil {
			appLogger.Errorw("Error sending response", "error", err)
		}
	}
}
