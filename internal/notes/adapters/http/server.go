package http

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/response"
	"gonotes/internal/notes/config"
	"gonotes/pkg/logger"
)

// ErrServerNotStarted возвращается при остановке незапущенного сервера.
var ErrServerNotStarted = errors.New("http server is not started")

// Server представляет HTTP сервер API заметок.
type Server struct {
	app      *fiber.App
	address  string
	listener net.Listener
}

// New создает HTTP сервер с маршрутами API.
func New(cfg *config.HTTPConfig, useCases UseCases) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "gonotes",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	SetupRouter(app, useCases)

	return &Server{
		app:     app,
		address: cfg.GetAddress(),
	}
}

// App возвращает приложение fiber.
func (s *Server) App() *fiber.App {
	return s.app
}

// Addr возвращает адрес, на котором сервер принимает соединения.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.address
}

// Start открывает порт и обслуживает запросы в отдельной горутине.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	log.Info(ctx, "HTTP server started", zap.String("address", listener.Addr().String()))

	go func() {
		if err := s.app.Listener(listener, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			log.Error(ctx, "failed to serve HTTP", zap.Error(err))
		}
	}()

	return nil
}

// Stop дожидается завершения активных запросов и останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	if s.listener == nil {
		return ErrServerNotStarted
	}

	logger.Log(ctx).Info(ctx, "stopping HTTP server")
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

// errorHandler отвечает на ошибки fiber (слишком большое тело, таймауты) в формате API.
func errorHandler(ctx fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(response.ErrorBody{Error: fiberErr.Message})
	}
	return response.Error(ctx, err)
}
