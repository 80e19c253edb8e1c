package httpapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/ozontech/truthtab/table"
	"github.com/ozontech/truthtab/truthtable"
)

//go:generate mockgen -source=api.go -destination=mock/tabulator.go -package=mock Tabulator

// Tabulator builds the tables served by the API, truthtable.Builder implements it.
type Tabulator interface {
	Variables(expression string) []string
	Generate(expression string) (*truthtable.Table, error)
	BuildChained(variables, lines []string) (*truthtable.Table, error)
	Evaluate(expression string, bindings map[string]string) (truthtable.Evaluation, error)
	Equivalent(p1, p2 string) (bool, *truthtable.Table, *truthtable.Table, error)
}

type Options struct {
	// MaxVariables refuses tables with more variables, 0 means the builder limit.
	MaxVariables int
	MaxBodySize  int64
	Render       table.Config
}

type API struct {
	tab  Tabulator
	opts Options
}

func New(tab Tabulator, opts Options) *API {
	return &API{
		tab:  tab,
		opts: opts,
	}
}

// Handler routes /v1 endpoints. Responses are gzipped when the client accepts it.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/v1/truth", a.endpoint("truth", a.serveTruth))
	mux.Handle("/v1/variables", a.endpoint("variables", a.serveVariables))
	mux.Handle("/v1/chain", a.endpoint("chain", a.serveChain))
	mux.Handle("/v1/evaluate", a.endpoint("evaluate", a.serveEvaluate))
	mux.Handle("/v1/equals", a.endpoint("equals", a.serveEquals))

	return gzhttp.GzipHandler(mux)
}
