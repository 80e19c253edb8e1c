package consts

import "time"

const (
	ColumnSeparator = " ║ "
	VerticalRune    = '║'
	RuleRune        = '═'
	JunctionRune    = '╬'

	// OutColumn is the header of the result column of a single-expression table.
	OutColumn = "out"

	// ParallelRowsThreshold is the number of rows starting from which rows
	// are evaluated by several workers.
	ParallelRowsThreshold = 64

	DefaultMaxVariables = 20

	DefaultMaxBodySize = 64 * KB

	KB = 1024
	MB = 1024 * 1024

	DefaultShutdownTimeout = 10 * time.Second
	DefaultReadTimeout     = 30 * time.Second

	// DebugHeader forces tracing of the request.
	DebugHeader    = "x-truthtab-debug"
	JaegerDebugKey = "jaeger-debug-id"

	RequestIDHeader = "X-Request-Id"
)
