package limits

import (
	"fmt"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/ozontech/truthtab/logger"
)

// NumCPU is GOMAXPROCS after it was fitted to the container CPU quota.
var NumCPU int

func init() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(tpl string, args ...any) { logger.Debug(fmt.Sprintf(tpl, args...)) }))

	NumCPU = runtime.GOMAXPROCS(0)
}

// Workers returns n, or NumCPU when n isn't positive.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return NumCPU
}
