package eval

// Step is one reduction recorded during evaluation: the rendered
// sub-expression without result markers and its result.
type Step struct {
	Expr   string
	Result bool
}

// Context binds variable names to literals and collects the evaluation trace.
// A context is meant for a single row: it is not safe for concurrent use.
type Context struct {
	vars  map[string]string
	trace []Step
}

func NewContext() *Context {
	return &Context{
		vars: make(map[string]string),
	}
}

// Bind creates a context binding names[i] to literals[i].
func Bind(names, literals []string) *Context {
	c := &Context{
		vars: make(map[string]string, len(names)),
	}
	for i := 0; i < len(names) && i < len(literals); i++ {
		c.vars[names[i]] = literals[i]
	}
	return c
}

func (c *Context) Set(name, literal string) {
	c.vars[name] = literal
}

func (c *Context) Get(name string) (string, bool) {
	l, has := c.vars[name]
	return l, has
}

// Trace returns reductions in the order they were performed.
func (c *Context) Trace() []Step {
	return c.trace
}

func (c *Context) ResetTrace() {
	c.trace = c.trace[:0]
}

func (c *Context) addStep(expr string, result bool) {
	c.trace = append(c.trace, Step{Expr: expr, Result: result})
}
