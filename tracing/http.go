package tracing

import (
	"context"
	"net/http"

	"go.opencensus.io/trace"

	"github.com/ozontech/truthtab/consts"
)

func isDebug(r *http.Request) bool {
	return r.Header.Get(consts.DebugHeader) != ""
}

// HTTPSpan starts a span for a request. Requests with the debug header are
// always sampled, others with the configured probability scaled by coeff.
func HTTPSpan(r *http.Request, name string, coeff float64) (context.Context, *trace.Span) {
	sampler := trace.ProbabilitySampler(defaultProbability * coeff)
	debug := isDebug(r)
	if debug {
		sampler = trace.AlwaysSample()
	}

	ctx, span := trace.StartSpan(r.Context(), name, trace.WithSampler(sampler))
	if debug {
		span.AddAttributes(trace.BoolAttribute(consts.JaegerDebugKey, true))
		ctx = context.WithValue(ctx, debugKey{}, true)
	}
	return ctx, span
}
