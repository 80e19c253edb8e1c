package httpapi

import (
	"context"

	insaneJSON "github.com/ozontech/insane-json"

	"github.com/ozontech/truthtab/tracing"
	"github.com/ozontech/truthtab/truthtable"
)

type variablesResponse struct {
	Variables []string `json:"variables"`
}

type evaluateResponse struct {
	Result   bool           `json:"result"`
	Rendered string         `json:"rendered"`
	Trace    []stepResponse `json:"trace"`
}

type equalsResponse struct {
	Equal bool          `json:"equal"`
	Left  tableResponse `json:"left"`
	Right tableResponse `json:"right"`
}

// checkVariables refuses expressions whose table would be too large to serve.
func (a *API) checkVariables(expressions ...string) error {
	for _, expr := range expressions {
		if err := truthtable.CheckVariableCount(len(a.tab.Variables(expr)), a.opts.MaxVariables); err != nil {
			return err
		}
	}
	return nil
}

func (a *API) serveTruth(ctx context.Context, req *insaneJSON.Root) (any, error) {
	expr, err := stringField(req, "expression")
	if err != nil {
		return nil, err
	}
	if err := a.checkVariables(expr); err != nil {
		return nil, err
	}

	_, span := tracing.StartSpan(ctx, "truthtab.generate")
	t, err := a.tab.Generate(expr)
	span.End()
	if err != nil {
		return nil, err
	}
	return newTableResponse(t, a.opts.Render), nil
}

func (a *API) serveVariables(_ context.Context, req *insaneJSON.Root) (any, error) {
	expr, err := stringField(req, "expression")
	if err != nil {
		return nil, err
	}
	return variablesResponse{Variables: a.tab.Variables(expr)}, nil
}

func (a *API) serveChain(ctx context.Context, req *insaneJSON.Root) (any, error) {
	variables, err := stringsField(req, "variables")
	if err != nil {
		return nil, err
	}
	variables = truthtable.UniqueVariables(variables)
	lines, err := stringsField(req, "lines")
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, badRequest("field %q must have at least one line", "lines")
	}
	if err := truthtable.CheckVariableCount(len(variables), a.opts.MaxVariables); err != nil {
		return nil, err
	}

	_, span := tracing.StartSpan(ctx, "truthtab.chain")
	t, err := a.tab.BuildChained(variables, lines)
	span.End()
	if err != nil {
		return nil, err
	}
	return newTableResponse(t, a.opts.Render), nil
}

func (a *API) serveEvaluate(_ context.Context, req *insaneJSON.Root) (any, error) {
	expr, err := stringField(req, "expression")
	if err != nil {
		return nil, err
	}
	bindings, err := bindingsField(req, "bindings")
	if err != nil {
		return nil, err
	}

	res, err := a.tab.Evaluate(expr, bindings)
	if err != nil {
		return nil, err
	}
	return evaluateResponse{
		Result:   res.Result,
		Rendered: res.Rendered,
		Trace:    newSteps(res.Trace),
	}, nil
}

func (a *API) serveEquals(ctx context.Context, req *insaneJSON.Root) (any, error) {
	left, err := stringField(req, "left")
	if err != nil {
		return nil, err
	}
	right, err := stringField(req, "right")
	if err != nil {
		return nil, err
	}
	if err := a.checkVariables(left, right); err != nil {
		return nil, err
	}

	_, span := tracing.StartSpan(ctx, "truthtab.equivalent")
	eq, t1, t2, err := a.tab.Equivalent(left, right)
	span.End()
	if err != nil {
		return nil, err
	}
	return equalsResponse{
		Equal: eq,
		Left:  newTableResponse(t1, a.opts.Render),
		Right: newTableResponse(t2, a.opts.Render),
	}, nil
}
