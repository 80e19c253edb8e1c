package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ozontech/truthtab/logger"
)

type Server struct {
	server *http.Server
}

func NewServer(handler http.Handler, readTimeout time.Duration) *Server {
	return &Server{
		server: &http.Server{
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
		},
	}
}

func (s *Server) Start(listener net.Listener) {
	// Resolve addrs like ":"
	addr := listener.Addr().String()

	logger.Info("http listening started", zap.String("addr", addr))

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("can't listen http addr", zap.String("http_addr", addr), zap.Error(err))
	}
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server graceful shutdown error", zap.Error(err))
	} else {
		logger.Info("http server gracefully stopped")
	}
}
