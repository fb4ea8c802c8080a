// Package grpc содержит gRPC сервер проверки здоровья сервиса заметок.
package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"gonotes/internal/notes/config"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// ServiceName - имя сервиса в протоколе grpc.health.v1.
const ServiceName = "gonotes.Notes"

// DefaultRefreshInterval - период обновления статуса по умолчанию.
const DefaultRefreshInterval = 10 * time.Second

// Server представляет gRPC сервер.
type Server struct {
	server   *grpc.Server
	health   *health.Server
	checker  api.HealthUseCase
	address  string
	interval time.Duration
	listener net.Listener

	stopOnce sync.Once
	done     chan struct{}
}

// New создает новый экземпляр gRPC сервера со службой здоровья.
func New(cfg *config.GRPCConfig, checker api.HealthUseCase) *Server {
	s := &Server{
		server:   grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor)),
		health:   health.NewServer(),
		checker:  checker,
		address:  cfg.GetAddress(),
		interval: DefaultRefreshInterval,
		done:     make(chan struct{}),
	}

	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)

	return s
}

// SetRefreshInterval задает период опроса зависимостей.
func (s *Server) SetRefreshInterval(interval time.Duration) {
	if interval > 0 {
		s.interval = interval
	}
}

// Addr возвращает адрес, на котором сервер принимает соединения.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.address
}

// Refresh опрашивает зависимости и обновляет статус службы здоровья.
func (s *Server) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	report := s.checker.Check(ctx)

	servingStatus := healthpb.HealthCheckResponse_SERVING
	if !report.Healthy {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", servingStatus)
	s.health.SetServingStatus(ServiceName, servingStatus)
	return servingStatus
}

// Start запускает gRPC сервер и периодическое обновление статуса.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	s.Refresh(ctx)
	go s.watch(ctx)

	log.Info(ctx, "gRPC server started", zap.String("address", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil {
			log.Error(ctx, "failed to serve gRPC", zap.Error(err))
		}
	}()

	return nil
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Refresh(ctx)
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop переводит службу здоровья в NOT_SERVING и останавливает сервер.
// Если активные вызовы не завершились до отмены ctx, сервер останавливается принудительно.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)
	log.Info(ctx, "stopping gRPC server")

	s.stopOnce.Do(func() { close(s.done) })
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		log.Warn(ctx, "graceful stop timed out, forcing gRPC server stop")
		s.server.Stop()
	}
}

func loggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	logger.Log(ctx).Debug(ctx, "gRPC call handled",
		zap.String("method", info.FullMethod),
		zap.String("code", status.Code(err).String()),
		zap.Duration("latency", time.Since(start)))

	return resp, err
}
