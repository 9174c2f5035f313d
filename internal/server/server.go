// Package server wires the endpoint handlers into an echo router behind the
// shared middleware and owns the HTTP listener lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotel-concierge/internal/common/config"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/common/metrics"
	"hotel-concierge/internal/common/observability"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Endpoint is any handler exposing an echo entry point.
type Endpoint interface {
	Handle(c echo.Context) error
}

// Routes binds one handler to each public endpoint.
type Routes struct {
	RoomDetails      Endpoint
	RoomNames        Endpoint
	RoomAvailability Endpoint
	GuestCreate      Endpoint
	GuestDetails     Endpoint
	GuestList        Endpoint
	ChatMessage      Endpoint
}

// Pinger is a dependency checked by /ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	obs        *observability.Observability
	readiness  map[string]Pinger
	logger     logger.Logger
}

func New(cfg config.HTTPConfig, routes Routes, obs *observability.Observability, readiness map[string]Pinger, log logger.Logger) *Server {
	if obs == nil {
		obs = observability.Noop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		obs:       obs,
		readiness: readiness,
		logger:    log.WithFields(map[string]interface{}{"component": "http"}),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.CORS())
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(s.observe)

	e.GET("/roomDetails", routes.RoomDetails.Handle)
	e.GET("/getRoomNames", routes.RoomNames.Handle)
	e.GET("/roomAvailability", routes.RoomAvailability.Handle)
	e.POST("/user/info", routes.GuestCreate.Handle)
	e.GET("/user/details", routes.GuestDetails.Handle)
	e.GET("/users", routes.GuestList.Handle)
	e.POST("/chat", routes.ChatMessage.Handle)

	e.GET("/health", s.health)
	e.GET("/ready", s.ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           e,
		ReadHeaderTimeout: config.GetDuration(cfg.ReadHeaderTimeout),
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks until the listener fails or Stop is called. A clean stop
// returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", map[string]interface{}{"addr": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server", nil)
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		ctx, span := s.obs.StartSpan(req.Context(), req.Method+" "+req.URL.Path)
		defer span.End()
		c.SetRequest(req.WithContext(ctx))

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method
		status := strconv.Itoa(c.Response().Status)
		elapsed := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
		s.obs.RecordRequest(ctx, route, status, elapsed)
		span.SetAttributes(
			attribute.String("http.route", route),
			attribute.Int("http.status_code", c.Response().Status),
		)

		if route != "/metrics" && route != "/health" {
			s.logger.Info("request handled", map[string]interface{}{
				"method":     method,
				"route":      route,
				"status":     c.Response().Status,
				"durationMs": elapsed.Milliseconds(),
				"requestId":  c.Response().Header().Get(echo.HeaderXRequestID),
				"traceId":    span.SpanContext().TraceID().String(),
			})
		}
		return nil
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(s.readiness))
	status := http.StatusOK
	for name, p := range s.readiness {
		if err := p.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	return c.JSON(status, map[string]interface{}{
		"status": state,
		"checks": checks,
		"time":   time.Now().Format(time.RFC3339),
	})
}
