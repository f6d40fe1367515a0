// Package server exposes the HIT form matcher and the wallet simulation over HTTP.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/adapters"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/ports"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/ports/middleware"
	"github.com/gofiber/fiber/v2"
)

// Config holds the configuration settings for the HTTP server
type Config struct {
	// AppName is the name of the application.
	AppName string `mapstructure:"app_name"`

	// Port is the TCP port on which the server will listen.
	Port int `mapstructure:"port"`

	// Addr is the address the server will bind to.
	Addr string `mapstructure:"addr"`

	// ServerHeader is the value of the Server header returned in HTTP responses.
	ServerHeader string `mapstructure:"server_header"`

	// WalletBearerToken guards the wallet simulation endpoint, which calls out to the wallet data sources.
	// Empty leaves the endpoint open.
	WalletBearerToken string `mapstructure:"wallet_bearer_token"`

	// ConnectionReadTimeout defines the maximum duration an active connection is allowed to stay open.
	ConnectionReadTimeout time.Duration `mapstructure:"connection_read_timeout_limit"`

	// EnablePprof exposes the pprof endpoints under /api/v1/debug/pprof.
	EnablePprof bool `mapstructure:"enable_pprof"`
}

// DefaultConfig provides a default configuration with reasonable values for local development.
var DefaultConfig = Config{
	AppName:               "HIT Simulator API v0.0.0",
	Port:                  3000,
	Addr:                  "localhost",
	ServerHeader:          "HIT Simulator API",
	WalletBearerToken:     "",
	ConnectionReadTimeout: 10 * time.Second,
	EnablePprof:           false,
}

// ServerOption defines a functional option for configuring an HTTP server.
type ServerOption func(*ServerHTTP)

// WithMiddleware adds a Fiber middleware handler applied before the routes.
func WithMiddleware(f fiber.Handler) ServerOption {
	return func(s *ServerHTTP) {
		s.middleware = append(s.middleware, f)
	}
}

// WithFormMatcher sets the matcher answering the form endpoints.
func WithFormMatcher(matcher app.FormMatcher) ServerOption {
	return func(s *ServerHTTP) {
		s.matcher = matcher
	}
}

// WithWalletSimulator sets the simulator answering the wallet simulation endpoint.
// Without it the endpoint answers with an internal error.
func WithWalletSimulator(simulator app.WalletSimulationProvider) ServerOption {
	return func(s *ServerHTTP) {
		s.simulator = simulator
	}
}

// WithWalletBearerToken sets the token required by the wallet simulation endpoint.
func WithWalletBearerToken(token string) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg.WalletBearerToken = token
	}
}

// WithConfig sets the configuration for the HTTP server and rebuilds the Fiber application from it.
func WithConfig(cfg Config) ServerOption {
	return func(s *ServerHTTP) {
		s.cfg = cfg
		s.app = newFiberApp(cfg)
	}
}

// ServerHTTP represents the HTTP server instance, including configuration,
// Fiber app instance, middleware stack, and the providers behind the handlers.
type ServerHTTP struct {
	cfg        Config
	app        *fiber.App
	middleware []fiber.Handler
	matcher    app.FormMatcher
	simulator  app.WalletSimulationProvider
}

// SocketAddr builds the address string for binding.
func (s *ServerHTTP) SocketAddr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.Port)
}

// ListenAndServe starts the HTTP server on the configured socket address.
// It blocks until the server is stopped or an error occurs.
func (s *ServerHTTP) ListenAndServe(ctx context.Context) error {
	return s.app.Listen(s.SocketAddr())
}

// Shutdown gracefully shuts down the HTTP server, letting ongoing requests complete
// within the context's deadline.
func (s *ServerHTTP) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// New creates and configures a new instance of ServerHTTP. Unless overridden by opts, forms are matched
// with a default hit.Matcher and the wallet simulation endpoint is disabled.
func New(opts ...ServerOption) *ServerHTTP {
	srv := &ServerHTTP{
		cfg:       DefaultConfig,
		app:       newFiberApp(DefaultConfig),
		matcher:   hit.NewMatcher(),
		simulator: adapters.NewNoopWalletSimulator(),
	}

	for _, o := range opts {
		o(srv)
	}

	for _, h := range middleware.BasicMiddlewareGroup(middleware.BasicMiddlewareGroupConfig{
		EnableStackTrace: true,
		EnablePprof:      srv.cfg.EnablePprof,
	}) {
		srv.app.Use(h)
	}
	for _, h := range srv.middleware {
		srv.app.Use(h)
	}

	registry := ports.NewHandlerRegistryService(srv.matcher, srv.simulator)
	registry.RegisterRoutes(srv.app, middleware.BearerTokenAuthorizationMiddleware(srv.cfg.WalletBearerToken))

	return srv
}

// newFiberApp creates a fiber.App with case-sensitive and strict routing, the configured server header
// and read timeout, and the application error handler.
func newFiberApp(cfg Config) *fiber.App {
	return fiber.New(fiber.Config{
		CaseSensitive: true,
		StrictRouting: true,
		ServerHeader:  cfg.ServerHeader,
		AppName:       cfg.AppName,
		ReadTimeout:   cfg.ConnectionReadTimeout,
		ErrorHandler:  ports.ErrorHandler(),
	})
}
