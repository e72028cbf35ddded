package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

// Config of the metrics endpoint
type Config struct {
	// Enabled starts the HTTP server exposing /metrics
	Enabled bool `mapstructure:"Enabled"`
	// Host to listen on
	Host string `mapstructure:"Host"`
	// Port to listen on
	Port int `mapstructure:"Port"`
}

// Server exposes the prometheus registry over HTTP
type Server struct {
	logger *log.Logger
	server *http.Server
}

// NewServer returns the metrics server for cfg
func NewServer(logger *log.Logger, cfg Config) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until ctx is done
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf("error stopping metrics server: %v", err)
		}
	}()

	s.logger.Infof("metrics server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
