package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// HealthEndpoint answers liveness probes.
const HealthEndpoint = "/health"

// BasicMiddlewareGroupConfig defines configuration options for building the middleware group.
type BasicMiddlewareGroupConfig struct {
	EnableStackTrace bool // Enable stack traces in panic recovery middleware.
	EnablePprof      bool // Expose pprof under /api/v1/debug/pprof.
}

// BasicMiddlewareGroup returns the middleware applied to every request: request IDs, CORS,
// panic recovery, access logging and the health check.
func BasicMiddlewareGroup(cfg BasicMiddlewareGroupConfig) []fiber.Handler {
	group := []fiber.Handler{
		requestid.New(),
		cors.New(),
		recover.New(recover.Config{EnableStackTrace: cfg.EnableStackTrace}),
		logger.New(logger.Config{
			Format:     "date=${time} request_id=${locals:requestid} status=${status} method=${method} path=${path} err=${error}\n",
			TimeFormat: "02-Jan-2006 15:04:05",
		}),
		healthcheck.New(healthcheck.Config{LivenessEndpoint: HealthEndpoint}),
	}
	if cfg.EnablePprof {
		group = append(group, pprof.New(pprof.Config{Prefix: "/api/v1"}))
	}
	return group
}
