package operator

// Default is the registry used by the parser, the evaluator and the
// variable extractor unless another one is given.
var Default = newDefault()

type classDef struct {
	class      Class
	arity      int
	precedence int
	assoc      Associativity
	symbols    []string
	glyphs     Glyphs
}

// higher precedence binds tighter
var classDefs = []classDef{
	{ClassNot, 1, 5, AssocRight, []string{"not", "NOT", "!", "¬"}, Glyphs{ASCII: "!", Unicode: "¬"}},
	{ClassAnd, 2, 4, AssocLeft, []string{"&&", "AND", "and", "∧"}, Glyphs{ASCII: "AND", Unicode: "∧"}},
	{ClassOr, 2, 3, AssocLeft, []string{"||", "OR", "or", "∨"}, Glyphs{ASCII: "OR", Unicode: "∨"}},
	{ClassImpl, 2, 2, AssocLeft, []string{"=>", "IMPL", "impl", "→"}, Glyphs{ASCII: "=>", Unicode: "→"}},
	{ClassEqui, 2, 1, AssocLeft, []string{"<=>", "EQUI", "equi", "↔"}, Glyphs{ASCII: "<=>", Unicode: "↔"}},

	{ClassNand, 2, 4, AssocLeft, []string{"NAND", "nand"}, Glyphs{ASCII: "NAND", Unicode: "NAND"}},
	{ClassNor, 2, 3, AssocLeft, []string{"NOR", "nor"}, Glyphs{ASCII: "NOR", Unicode: "NOR"}},
	{ClassXor, 2, 3, AssocLeft, []string{"XOR", "xor", "⊕"}, Glyphs{ASCII: "XOR", Unicode: "⊕"}},
}

func newDefault() *Registry {
	r := NewRegistry()
	for _, d := range classDefs {
		for _, s := range d.symbols {
			err := r.Register(Operator{
				Symbol:        s,
				Arity:         d.arity,
				Precedence:    d.precedence,
				Associativity: d.assoc,
				Class:         d.class,
			})
			if err != nil {
				panic(err)
			}
		}
		r.SetGlyphs(d.class, d.glyphs)
	}
	return r
}
