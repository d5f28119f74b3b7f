// Package server exposes the design session over HTTP for the browser UI.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/config"
	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/internal/session"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP API in front of a session.
type Server struct {
	app  *fiber.App
	addr string
	log  *zap.Logger
}

// New builds the fiber app and registers every route.
func New(cfg config.ServerConfig, sess *session.Session) *Server {
	log := logger.Named("server")

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		AppName:      "Court Designer",
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(RequestLogger(log))
	app.Use(CORS(cfg.CORSOrigins))

	h := &Handler{session: sess}

	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)

	api := app.Group("/api/v1")
	api.Get("/design", h.GetDesign)
	api.Patch("/design", h.PatchDesign)
	api.Post("/design/reset", h.ResetDesign)
	api.Post("/design/generate", h.GenerateDesign)
	api.Get("/scene", h.GetScene)
	api.Get("/locale", h.GetLocale)
	api.Put("/locale", h.PutLocale)
	api.Get("/messages", h.GetMessages)

	return &Server{app: app, addr: cfg.Addr, log: log}
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.addr))
		errCh <- s.app.Listen(s.addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
