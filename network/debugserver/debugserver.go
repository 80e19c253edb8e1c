package debugserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/ozontech/truthtab/logger"
)

// Server exposes metrics, probes and the log level of the process.
type Server struct {
	server *http.Server
}

func New(addr string, ready *atomic.Bool) *Server {
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: Handler(ready),
		},
	}
}

// Start serves on the listener until Stop is called.
func (s *Server) Start(l net.Listener) {
	logger.Info("debug listen started", zap.String("addr", l.Addr().String()))
	err := s.server.Serve(l)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed to serve debug addr", zap.Error(err))
	}
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("shutdown debug server", zap.Error(err))
		return
	}
	logger.Info("shutdown debug server successful")
}

func Handler(ready *atomic.Bool) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/live", liveness)
	mux.HandleFunc("/ready", readiness(ready))
	mux.Handle("/log/level", logger.Handler())

	return mux
}

// liveness is always ok
func liveness(w http.ResponseWriter, _ *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.Error("failed to write liveness status", zap.Error(err))
	}
}

// readiness is ok once the api server accepts requests
func readiness(ready *atomic.Bool) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var err error
		if ready.Load() {
			_, err = w.Write([]byte("OK"))
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err = w.Write([]byte("Not ready"))
		}
		if err != nil {
			logger.Error("failed to write readiness status", zap.Error(err))
		}
	}
}
