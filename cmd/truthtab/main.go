package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ozontech/truthtab/buildinfo"
	"github.com/ozontech/truthtab/config"
	"github.com/ozontech/truthtab/display"
	"github.com/ozontech/truthtab/httpapi"
	"github.com/ozontech/truthtab/limits"
	"github.com/ozontech/truthtab/logger"
	"github.com/ozontech/truthtab/network/debugserver"
	"github.com/ozontech/truthtab/operator"
	"github.com/ozontech/truthtab/table"
	"github.com/ozontech/truthtab/tracing"
	"github.com/ozontech/truthtab/truthtable"
	"github.com/ozontech/truthtab/util"
)

func main() {
	kingpin.Version(buildinfo.Version)
	cmd := kingpin.Parse()

	cfg, err := config.Parse(*flagConfig)
	kingpin.FatalIfError(err, "loading config")
	applyFlags(&cfg)
	kingpin.FatalIfError(cfg.Validate(), "invalid settings")

	render := table.Config{
		HeaderLine:  cfg.Display.HeaderLine,
		ColumnLines: cfg.Display.ColumnLines,
	}
	normalizer := display.NewNormalizer(display.ModeOf(cfg.Display.Unicode), operator.Default)
	printer := display.NewPrinter(os.Stdout, render, cfg.Display.Color)

	newBuilder := func(trace bool) *truthtable.Builder {
		return truthtable.New(
			truthtable.WithWorkers(cfg.Limits.Workers),
			truthtable.WithTrace(trace),
			truthtable.WithHeaderFormatter(normalizer.Normalize),
		)
	}

	switch cmd {
	case cmdTruth.FullCommand():
		b := newBuilder(*flagTruthTrace)
		kingpin.FatalIfError(checkVariables(b, cfg.Limits.MaxVariables, *argTruthExpr), "truth")
		t, err := b.Generate(*argTruthExpr)
		kingpin.FatalIfError(err, "truth")

		kingpin.FatalIfError(printer.PrintTitle(normalizer.Normalize(*argTruthExpr)), "printing")
		kingpin.FatalIfError(printer.PrintTable(t), "printing")
		if *flagTruthTrace {
			kingpin.FatalIfError(printer.PrintTrace(t), "printing")
		}

	case cmdVars.FullCommand():
		kingpin.FatalIfError(printer.PrintVariables(newBuilder(false).Variables(*argVarsExpr)), "printing")

	case cmdEval.FullCommand():
		res, err := newBuilder(false).Evaluate(*argEvalExpr, *flagEvalSet)
		kingpin.FatalIfError(err, "eval")
		kingpin.FatalIfError(printer.PrintSteps(res.Trace), "printing")
		kingpin.FatalIfError(printer.PrintResult(res.Rendered, res.Result), "printing")

	case cmdChain.FullCommand():
		variables := truthtable.UniqueVariables(strings.Fields(*flagChainVars))
		lines := *flagChainLines
		if len(lines) == 0 {
			lines, err = readLines(os.Stdin)
			kingpin.FatalIfError(err, "reading lines")
		}
		kingpin.FatalIfError(truthtable.CheckVariableCount(len(variables), cfg.Limits.MaxVariables), "chain")
		t, err := newBuilder(false).BuildChained(variables, lines)
		kingpin.FatalIfError(err, "chain")
		kingpin.FatalIfError(printer.PrintTable(t), "printing")

	case cmdEquals.FullCommand():
		b := newBuilder(false)
		kingpin.FatalIfError(checkVariables(b, cfg.Limits.MaxVariables, *argEqualsLeft, *argEqualsRight), "equals")
		eq, t1, t2, err := b.Equivalent(*argEqualsLeft, *argEqualsRight)
		kingpin.FatalIfError(err, "equals")

		for _, p := range []struct {
			expr string
			t    *truthtable.Table
		}{{*argEqualsLeft, t1}, {*argEqualsRight, t2}} {
			kingpin.FatalIfError(printer.PrintTitle(normalizer.Normalize(p.expr)), "printing")
			kingpin.FatalIfError(printer.PrintTable(p.t), "printing")
		}
		fmt.Printf("equivalent: %t\n", eq)
		if !eq {
			os.Exit(1)
		}

	case cmdServe.FullCommand():
		serve(cfg, render, newBuilder(*flagServeTrace))
	}
}

func applyFlags(cfg *config.Config) {
	if *flagUnicode {
		cfg.Display.Unicode = true
	}
	if *flagNoHeaderLine {
		cfg.Display.HeaderLine = false
	}
	if *flagNoColumnLines {
		cfg.Display.ColumnLines = false
	}
	if *flagColor {
		cfg.Display.Color = true
	}
	if *flagWorkers > 0 {
		cfg.Limits.Workers = limits.Workers(*flagWorkers)
	}
	if *flagMaxVars > 0 {
		cfg.Limits.MaxVariables = *flagMaxVars
	}
	if *flagServeAddr != "" {
		cfg.Server.Addr = *flagServeAddr
	}
	if *flagServeDebugAddr != "" {
		cfg.Server.DebugAddr = *flagServeDebugAddr
	}
}

func checkVariables(b *truthtable.Builder, limit int, expressions ...string) error {
	for _, expr := range expressions {
		if err := truthtable.CheckVariableCount(len(b.Variables(expr)), limit); err != nil {
			return err
		}
	}
	return nil
}

func serve(cfg config.Config, render table.Config, b *truthtable.Builder) {
	logger.Info("hi, I am truthtab",
		zap.String("version", buildinfo.Version),
		zap.String("build_time", buildinfo.BuildTime),
		zap.Int("workers", cfg.Limits.Workers),
		zap.Int("max_variables", cfg.Limits.MaxVariables),
		zap.String("max_body_size", util.SizeStr(uint64(cfg.Server.MaxBodySize))),
	)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tracing.Start(tracing.OptionsFromEnv(cfg.Tracing.SamplingRate)); err != nil {
		logger.Error("error initializing tracing", zap.Error(err))
	}

	var serviceReady atomic.Bool
	debugListener, err := net.Listen("tcp", cfg.Server.DebugAddr)
	if err != nil {
		logger.Fatal("can't listen debug addr", zap.String("addr", cfg.Server.DebugAddr), zap.Error(err))
	}
	debugServer := debugserver.New(cfg.Server.DebugAddr, &serviceReady)
	go debugServer.Start(debugListener)

	api := httpapi.New(b, httpapi.Options{
		MaxVariables: cfg.Limits.MaxVariables,
		MaxBodySize:  int64(cfg.Server.MaxBodySize),
		Render:       render,
	})
	listener, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		logger.Fatal("can't listen http addr", zap.String("addr", cfg.Server.Addr), zap.Error(err))
	}
	server := httpapi.NewServer(api.Handler(), cfg.Server.ReadTimeout)
	go server.Start(listener)

	serviceReady.Store(true)

	<-ctx.Done()
	logger.Info("got signal to quit")
	serviceReady.Store(false)

	stopCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stop()
	server.Stop(stopCtx)
	debugServer.Stop(stopCtx)

	_ = logger.Sync()
	logger.Info("quit")
}
