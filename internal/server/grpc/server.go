// Package grpc serves the standard gRPC health service so orchestrators can
// probe the API's readiness without an HTTP client.
package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is reported alongside the overall ("") status.
const ServiceName = "motorpool.API"

const (
	defaultProbeInterval = 5 * time.Second
	probeTimeout         = 2 * time.Second
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Option func(*HealthServer)

// WithProbeInterval sets how often the store is pinged.
func WithProbeInterval(d time.Duration) Option {
	return func(s *HealthServer) {
		if d > 0 {
			s.interval = d
		}
	}
}

type HealthServer struct {
	address  string
	logger   logging.Logger
	probe    Pinger
	interval time.Duration
	health   *health.Server

	mu      sync.Mutex
	serving bool
}

// NewHealthServer returns a server that mirrors probe into the health
// service. A nil probe means always serving.
func NewHealthServer(address string, l logging.Logger, probe Pinger, opts ...Option) *HealthServer {
	s := &HealthServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		probe:    probe,
		interval: defaultProbeInterval,
		health:   health.NewServer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HealthServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HealthServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	s.refresh(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info(ctx, "Stopping gRPC server...")
				s.health.Shutdown()
				srv.GracefulStop()
				return
			case <-ticker.C:
				s.refresh(ctx)
			}
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}

// refresh pings the store once and publishes the result.
func (s *HealthServer) refresh(ctx context.Context) {
	serving := true
	if s.probe != nil {
		pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.probe.PingContext(pingCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			serving = false
			s.logger.Warn(ctx, "store probe failed", "error", err)
		}
	}

	s.mu.Lock()
	changed := s.serving != serving
	s.serving = serving
	s.mu.Unlock()

	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)

	if changed {
		s.logger.Info(ctx, "health status changed", "status", st.String())
	}
}
