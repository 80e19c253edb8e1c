package main

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	flagConfig = kingpin.Flag("config", `path to yaml config`).Envar("TRUTHTAB_CONFIG").String()

	// display, each flag only overrides the config when set
	flagUnicode       = kingpin.Flag("unicode", `render operators with logic glyphs`).Bool()
	flagNoHeaderLine  = kingpin.Flag("no-header-line", `don't draw a rule under the header`).Bool()
	flagNoColumnLines = kingpin.Flag("no-column-lines", `don't separate columns with lines`).Bool()
	flagColor         = kingpin.Flag("color", `colorize the header and results`).Bool()

	// limits, 0 keeps the config value
	flagWorkers = kingpin.Flag("workers", `goroutines evaluating rows of large tables`).Int()
	flagMaxVars = kingpin.Flag("max-vars", `refuse expressions with more variables`).Int()

	cmdTruth       = kingpin.Command("truth", `print the truth table of an expression`)
	argTruthExpr   = cmdTruth.Arg("expression", `e.g. "(A AND B) => C"`).Required().String()
	flagTruthTrace = cmdTruth.Flag("trace", `print reductions of every row`).Bool()

	cmdVars     = kingpin.Command("vars", `print variables of an expression`)
	argVarsExpr = cmdVars.Arg("expression", `expression to scan`).Required().String()

	cmdEval     = kingpin.Command("eval", `evaluate an expression with the given bindings`)
	argEvalExpr = cmdEval.Arg("expression", `expression to evaluate`).Required().String()
	flagEvalSet = cmdEval.Flag("set", `binding NAME=VALUE, may be repeated`).Short('s').StringMap()

	cmdChain       = kingpin.Command("chain", `evaluate lines in order, "name = expr" lines bind their result`)
	flagChainVars  = cmdChain.Flag("vars", `space separated input variables, e.g. "A B"`).Required().String()
	flagChainLines = cmdChain.Flag("line", `line to evaluate, stdin is read when none is given`).Short('l').Strings()

	cmdEquals      = kingpin.Command("equals", `compare truth tables of two expressions`)
	argEqualsLeft  = cmdEquals.Arg("left", `first expression`).Required().String()
	argEqualsRight = cmdEquals.Arg("right", `second expression`).Required().String()

	cmdServe = kingpin.Command("serve", `serve the http api`)
	// serve flags override server addresses of the config
	flagServeAddr      = cmdServe.Flag("addr", `listen addr e.g. ":9002"`).String()
	flagServeDebugAddr = cmdServe.Flag("debug-addr", `debug listen addr e.g. ":9200"`).String()
	flagServeTrace     = cmdServe.Flag("trace", `include reductions of every row in responses`).Bool()
)
