package tracing

import (
	"fmt"
	"net"
	"os"

	"contrib.go.opencensus.io/exporter/jaeger"
	"go.opencensus.io/trace"
	"go.uber.org/zap"

	"github.com/ozontech/truthtab/buildinfo"
	"github.com/ozontech/truthtab/logger"
)

var defaultProbability = 0.01

type Options struct {
	ServiceName string
	AgentHost   string
	AgentPort   string
	// Probability is the share of sampled requests, from 0 to 1.
	Probability float64
}

// OptionsFromEnv reads the agent address and the service name from
// TRACING_* variables.
func OptionsFromEnv(probability float64) Options {
	o := Options{
		ServiceName: "truthtab",
		AgentHost:   "127.0.0.1",
		AgentPort:   "6831",
		Probability: probability,
	}
	if v := os.Getenv("TRACING_SERVICE_NAME"); v != "" {
		o.ServiceName = v
	}
	if v := os.Getenv("TRACING_AGENT_HOST"); v != "" {
		o.AgentHost = v
	}
	if v := os.Getenv("TRACING_AGENT_PORT"); v != "" {
		o.AgentPort = v
	}
	return o
}

// Start registers the jaeger exporter. Spans are sent in the background,
// export errors are only logged.
func Start(o Options) error {
	defaultProbability = o.Probability

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("getting hostname: %w", err)
	}

	exp, err := jaeger.NewExporter(jaeger.Options{
		AgentEndpoint: net.JoinHostPort(o.AgentHost, o.AgentPort),
		OnError: func(err error) {
			logger.Error("error sending trace", zap.Error(err))
		},
		Process: jaeger.Process{
			ServiceName: o.ServiceName,
			Tags: []jaeger.Tag{
				jaeger.StringTag("host.name", hostname),
				jaeger.StringTag("version", buildinfo.Version),
				jaeger.StringTag("build.time", buildinfo.BuildTime),
				jaeger.StringTag("ip", privateIP()),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating jaeger exporter: %w", err)
	}

	trace.RegisterExporter(exp)
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.ProbabilitySampler(o.Probability)})
	logger.Info("tracing initialized",
		zap.String("service", o.ServiceName),
		zap.Float64("probability", o.Probability),
	)
	return nil
}
