package truthtable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ozontech/truthtab/value"
)

var ErrVariableCountOverflow = errors.New("too many variables")

// MaxVariables is the hard bound of the builder. Rows of a table are
// allocated at once and 1<<42 rows already exceed what the runtime can allocate.
const MaxVariables = 40

// CheckVariableCount is meant for callers that want to refuse enumerations
// too large to be useful. A limit <= 0 leaves only MaxVariables.
func CheckVariableCount(n, limit int) error {
	if n > MaxVariables || (limit > 0 && n > limit) {
		if limit <= 0 || limit > MaxVariables {
			limit = MaxVariables
		}
		return fmt.Errorf("%w: %d variables, limit is %d", ErrVariableCountOverflow, n, limit)
	}
	return nil
}

// Assignment holds one value per variable, in variable order.
type Assignment []bool

// AssignmentAt returns the i-th assignment of n variables in binary counting
// order: the first variable is the most significant bit.
func AssignmentAt(i uint64, n int) Assignment {
	a := make(Assignment, n)
	for j := 0; j < n; j++ {
		a[j] = i&(1<<(n-1-j)) != 0
	}
	return a
}

// Bits renders the assignment as "0"/"1" literals.
func (a Assignment) Bits() []string {
	res := make([]string, len(a))
	for i, b := range a {
		res[i] = value.Bit(b)
	}
	return res
}

func (a Assignment) String() string {
	return strings.Join(a.Bits(), "")
}
