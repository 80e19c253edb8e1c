package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ozontech/truthtab/eval"
	"github.com/ozontech/truthtab/logger"
	"github.com/ozontech/truthtab/parser"
	"github.com/ozontech/truthtab/table"
	"github.com/ozontech/truthtab/truthtable"
	"github.com/ozontech/truthtab/value"
)

type stepResponse struct {
	Expr   string `json:"expr"`
	Result bool   `json:"result"`
}

type tableResponse struct {
	Header []string `json:"header"`
	// Rows are "0"/"1" cells, assignment first
	Rows  [][]string `json:"rows"`
	Table string     `json:"table"`
	// Trace holds reductions per row when the builder traces
	Trace [][]stepResponse `json:"trace,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newTableResponse(t *truthtable.Table, cfg table.Config) tableResponse {
	grid := t.Grid()
	resp := tableResponse{
		Header: grid[0],
		Rows:   grid[1:],
		Table:  t.Render(cfg),
	}
	if traced(t) {
		resp.Trace = make([][]stepResponse, len(t.Rows))
		for i, r := range t.Rows {
			resp.Trace[i] = newSteps(r.Trace)
		}
	}
	return resp
}

func traced(t *truthtable.Table) bool {
	for _, r := range t.Rows {
		if len(r.Trace) > 0 {
			return true
		}
	}
	return false
}

func newSteps(steps []eval.Step) []stepResponse {
	res := make([]stepResponse, len(steps))
	for i, s := range steps {
		res[i] = stepResponse{Expr: s.Expr, Result: s.Result}
	}
	return res
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, truthtable.ErrVariableCountOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadRequest),
		errors.Is(err, parser.ErrSyntax),
		errors.Is(err, value.ErrUnknownLiteral),
		errors.Is(err, eval.ErrInvalidOperator),
		errors.Is(err, eval.ErrMalformedExpression):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("can't write response", zap.Error(err))
	}
}
