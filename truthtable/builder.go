package truthtable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ozontech/truthtab/consts"
	"github.com/ozontech/truthtab/eval"
	"github.com/ozontech/truthtab/logger"
	"github.com/ozontech/truthtab/metric"
	"github.com/ozontech/truthtab/parser"
	"github.com/ozontech/truthtab/value"
	"github.com/ozontech/truthtab/vars"
)

const (
	kindTruth   = "truth"
	kindChained = "chained"
)

type Option func(*Builder)

// WithWorkers sets how many goroutines evaluate rows of large tables.
// Values below 2 disable parallel evaluation.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

func WithEvaluator(e *eval.Evaluator) Option {
	return func(b *Builder) {
		b.evaluator = e
	}
}

func WithExtractor(e *vars.Extractor) Option {
	return func(b *Builder) {
		b.extractor = e
	}
}

// WithTrace keeps the evaluation trace of every row.
func WithTrace(enabled bool) Option {
	return func(b *Builder) {
		b.trace = enabled
	}
}

// WithHeaderFormatter sets how expressions are displayed in chained headers.
func WithHeaderFormatter(f func(string) string) Option {
	return func(b *Builder) {
		b.formatHeader = f
	}
}

// Builder enumerates assignments and evaluates expressions for each of them.
// Rows do not depend on each other, lines of a chained row do.
type Builder struct {
	workers      int
	trace        bool
	evaluator    *eval.Evaluator
	extractor    *vars.Extractor
	formatHeader func(string) string
}

func New(opts ...Option) *Builder {
	b := &Builder{
		workers:      1,
		evaluator:    eval.Default,
		extractor:    vars.Default,
		formatHeader: collapseSpaces,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Variables returns the sorted distinct variables of expression.
func (b *Builder) Variables(expression string) []string {
	return b.extractor.Extract(expression)
}

// Generate builds the truth table of a single expression.
// The header is the sorted variables followed by "out".
func (b *Builder) Generate(expression string) (*Table, error) {
	start := time.Now()

	x, err := b.evaluator.Compile(expression)
	if err != nil {
		return nil, countError(err)
	}
	variables := b.extractor.Extract(expression)
	if err := CheckVariableCount(len(variables), 0); err != nil {
		return nil, countError(err)
	}

	rows := make([]Row, 1<<len(variables))
	err = b.forEachRow(len(rows), func(i int) error {
		a := AssignmentAt(uint64(i), len(variables))
		ctx := eval.Bind(variables, a.Bits())
		out, err := x.Eval(ctx)
		if err != nil {
			return fmt.Errorf("evaluating %q for %s: %w", expression, a, err)
		}
		rows[i] = Row{Assignment: a, Outputs: []bool{out}}
		if b.trace {
			rows[i].Trace = ctx.Trace()
		}
		return nil
	})
	if err != nil {
		return nil, countError(err)
	}

	t := &Table{
		Variables: variables,
		Header:    append(slices.Clone(variables), consts.OutColumn),
		Rows:      rows,
	}
	observe(kindTruth, start, len(rows))
	logger.Debug("truth table built",
		zap.String("expression", expression),
		zap.Strings("variables", variables),
		zap.Duration("took", time.Since(start)),
	)
	return t, nil
}

// UniqueVariables drops repeated names keeping the first occurrence, so every
// input column is bound to exactly one bit of the assignment.
func UniqueVariables(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	res := make([]string, 0, len(names))
	for _, name := range names {
		if _, has := seen[name]; has {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}

// BuildChained evaluates lines in order for every assignment of variables.
// Each result is bound to the line name before the next line is evaluated,
// so later lines may refer to earlier ones. A line without "name = expr"
// form is a column named by its own text.
func (b *Builder) BuildChained(variables, lines []string) (*Table, error) {
	start := time.Now()

	variables = UniqueVariables(variables)
	if err := CheckVariableCount(len(variables), 0); err != nil {
		return nil, countError(err)
	}

	parsed := make([]Line, len(lines))
	exprs := make([]*eval.Expression, len(lines))
	var errs error
	for i, l := range lines {
		parsed[i] = ParseLine(l)
		if !parsed[i].Named {
			logger.Debug("chained line has no binding, using it as an anonymous column", zap.String("line", l))
		}
		x, err := b.evaluator.Compile(parsed[i].Expr)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d %q: %w", i+1, l, err))
			continue
		}
		exprs[i] = x
	}
	if errs != nil {
		return nil, countError(errs)
	}

	header := slices.Clone(variables)
	for _, l := range parsed {
		if l.Named {
			header = append(header, l.Name+" = "+b.formatHeader(l.Expr))
		} else {
			header = append(header, b.formatHeader(l.Expr))
		}
	}

	rows := make([]Row, 1<<len(variables))
	err := b.forEachRow(len(rows), func(i int) error {
		a := AssignmentAt(uint64(i), len(variables))
		ctx := eval.Bind(variables, a.Bits())
		outputs := make([]bool, len(exprs))
		for j, x := range exprs {
			out, err := x.Eval(ctx)
			if err != nil {
				return fmt.Errorf("evaluating line %d %q for %s: %w", j+1, lines[j], a, err)
			}
			outputs[j] = out
			ctx.Set(parsed[j].Name, value.Bit(out))
		}
		rows[i] = Row{Assignment: a, Outputs: outputs}
		if b.trace {
			rows[i].Trace = ctx.Trace()
		}
		return nil
	})
	if err != nil {
		return nil, countError(err)
	}

	observe(kindChained, start, len(rows))
	logger.Debug("chained truth table built",
		zap.Strings("variables", variables),
		zap.Int("lines", len(lines)),
		zap.Duration("took", time.Since(start)),
	)
	return &Table{
		Variables: variables,
		Header:    header,
		Rows:      rows,
	}, nil
}

// Equivalent builds truth tables of both expressions and compares them.
func (b *Builder) Equivalent(p1, p2 string) (bool, *Table, *Table, error) {
	t1, err := b.Generate(p1)
	if err != nil {
		return false, nil, nil, err
	}
	t2, err := b.Generate(p2)
	if err != nil {
		return false, nil, nil, err
	}
	return Equal(t1, t2), t1, t2, nil
}

type Evaluation struct {
	Result bool
	// Rendered is the final rendering with result markers
	Rendered string
	Trace    []eval.Step
}

// Evaluate evaluates a single expression with the given bindings and
// returns every reduction it performed.
func (b *Builder) Evaluate(expression string, bindings map[string]string) (Evaluation, error) {
	x, err := b.evaluator.Compile(expression)
	if err != nil {
		return Evaluation{}, countError(err)
	}
	ctx := eval.NewContext()
	for name, literal := range bindings {
		ctx.Set(name, literal)
	}
	rendered, err := x.Render(ctx)
	if err != nil {
		return Evaluation{}, countError(err)
	}
	res, err := value.Valuate(rendered)
	if err != nil {
		return Evaluation{}, countError(err)
	}
	return Evaluation{
		Result:   res,
		Rendered: rendered,
		Trace:    ctx.Trace(),
	}, nil
}

// forEachRow calls fn for every row index. Large tables are split into
// contiguous ranges processed concurrently; the error of the lowest row wins.
func (b *Builder) forEachRow(count int, fn func(i int) error) error {
	if b.workers < 2 || count < consts.ParallelRowsThreshold {
		for i := 0; i < count; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	chunk := (count + b.workers - 1) / b.workers
	errs := make([]error, (count+chunk-1)/chunk)

	g := errgroup.Group{}
	g.SetLimit(b.workers)
	for n := range errs {
		n := n
		from, to := n*chunk, min((n+1)*chunk, count)
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := fn(i); err != nil {
					errs[n] = err
					return err
				}
			}
			return nil
		})
	}
	if g.Wait() == nil {
		return nil
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func observe(kind string, start time.Time, rows int) {
	metric.TablesTotal.WithLabelValues(kind).Inc()
	metric.RowsTotal.Add(float64(rows))
	metric.BuildDurationSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func countError(err error) error {
	metric.EvalErrorsTotal.WithLabelValues(ErrorKind(err)).Inc()
	return err
}

// ErrorKind classifies errors of the package and its dependencies.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, parser.ErrSyntax):
		return "syntax"
	case errors.Is(err, value.ErrUnknownLiteral):
		return "unknown_literal"
	case errors.Is(err, eval.ErrInvalidOperator):
		return "invalid_operator"
	case errors.Is(err, eval.ErrMalformedExpression):
		return "malformed_expression"
	case errors.Is(err, ErrVariableCountOverflow):
		return "variable_count_overflow"
	default:
		return "other"
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
