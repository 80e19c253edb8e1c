package tracing

import (
	"context"
	"net"

	"go.opencensus.io/trace"

	"github.com/ozontech/truthtab/consts"
)

// privateIP returns the first 10.*.*.* address of an up interface
func privateIP() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "unknown"
	}
	for _, i := range ifaces {
		if i.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := i.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() && ip4[0] == 10 {
				return ip4.String()
			}
		}
	}
	return "unknown"
}

// StartSpan starts a child span, the debug flag of the parent is inherited.
func StartSpan(ctx context.Context, name string, o ...trace.StartOption) (context.Context, *trace.Span) {
	rCtx, span := trace.StartSpan(ctx, name, o...)
	if isDebugContext(ctx) {
		span.AddAttributes(trace.BoolAttribute(consts.JaegerDebugKey, true))
	}
	return rCtx, span
}

func isDebugContext(ctx context.Context) bool {
	return ctx.Value(debugKey{}) != nil
}

type debugKey struct{}
