// Package server hosts both static-file launch paths: the built-in fiber
// server and the npx http-server wrapper, plus the delayed browser-open task
// they share.
package server

import (
	"os"
	"os/signal"
	"syscall"

	"portkit/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New builds the built-in static file server. Every response carries the
// three fixed security headers; requests are logged through zap.
func New(cfg config.Server, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(securityHeaders)
	app.Use(requestLogger(log))
	app.Static("/", cfg.Root)

	return app
}

// securityHeaders adds the fixed, non-configurable response headers:
// content-type sniffing protection, frame-embedding restriction and the
// legacy XSS filter hint.
func securityHeaders(c *fiber.Ctx) error {
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("X-Frame-Options", "SAMEORIGIN")
	c.Set("X-XSS-Protection", "1; mode=block")
	return c.Next()
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// Run binds the app and blocks until an interrupt, then shuts down
// gracefully, letting in-flight requests finish. A bind failure is returned
// immediately.
func Run(app *fiber.App, cfg config.Server, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case <-sig:
		log.Info("shutting down")
		return app.Shutdown()
	}
}
