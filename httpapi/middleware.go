package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	insaneJSON "github.com/ozontech/insane-json"
	"go.opencensus.io/trace"
	"go.uber.org/zap"

	"github.com/ozontech/truthtab/consts"
	"github.com/ozontech/truthtab/logger"
	"github.com/ozontech/truthtab/metric"
	"github.com/ozontech/truthtab/tracing"
	"github.com/ozontech/truthtab/util"
)

// handlerFunc gets the decoded request body and returns the response to encode.
type handlerFunc func(ctx context.Context, req *insaneJSON.Root) (any, error)

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (a *API) endpoint(name string, fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(consts.RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		rw.Header().Set(consts.RequestIDHeader, id)
		log := logger.With(zap.String("request_id", id), zap.String("handler", name))

		ctx, span := tracing.HTTPSpan(r, "truthtab."+name, 1)
		span.AddAttributes(trace.StringAttribute("request_id", id))

		w := &statusWriter{ResponseWriter: rw, code: http.StatusOK}
		defer func() {
			if err := util.RecoverToError(recover(), metric.PanicsTotal); err != nil {
				writeError(w, http.StatusInternalServerError, err)
			}
			span.AddAttributes(trace.Int64Attribute("http.status_code", int64(w.code)))
			span.End()

			metric.HTTPRequestsTotal.WithLabelValues(name, strconv.Itoa(w.code)).Inc()
			metric.HTTPDurationSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
		}()

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, errors.New("only POST is allowed"))
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.maxBodySize()))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, err)
				return
			}
			writeError(w, http.StatusBadRequest, err)
			return
		}

		req := insaneJSON.Spawn()
		defer insaneJSON.Release(req)
		if err := req.DecodeBytes(body); err != nil {
			writeError(w, http.StatusBadRequest, badRequest("decoding body: %s", err))
			return
		}

		resp, err := fn(ctx, req)
		if err != nil {
			code := statusOf(err)
			if code >= http.StatusInternalServerError {
				log.Error("request failed", zap.Error(err))
			} else {
				log.Debug("bad request", zap.Error(err))
			}
			writeError(w, code, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

func (a *API) maxBodySize() int64 {
	if a.opts.MaxBodySize > 0 {
		return a.opts.MaxBodySize
	}
	return consts.DefaultMaxBodySize
}
