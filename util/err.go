package util

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/c2h5oh/datasize"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ozontech/truthtab/logger"
)

// PanicError is an error restored from a recovered panic.
type PanicError struct {
	err   error
	Stack string
}

func (p *PanicError) Unwrap() error {
	return p.err
}

func (p *PanicError) Error() string {
	return "panic: " + p.err.Error()
}

func IsRecoveredPanicError(e error) bool {
	if e == nil {
		return false
	}

	var p *PanicError
	if errors.As(e, &p) {
		return true
	}

	var re runtime.Error
	return errors.As(e, &re)
}

// RecoverToError converts the result of recover() to an error, counts it and
// logs it with the stack. It returns nil when there was no panic.
func RecoverToError(panicData any, metric prometheus.Counter) error {
	err := fetchError(panicData)
	if err == nil {
		return nil
	}
	p := &PanicError{err: err, Stack: zap.Stack("").String}
	metric.Inc()
	logger.Error("panic recovered", zap.Error(err), zap.String("stack", p.Stack))
	return p
}

func fetchError(panicData any) error {
	if panicData == nil {
		return nil
	}
	if err, ok := panicData.(error); ok {
		return err
	}
	return fmt.Errorf("%v", panicData)
}

// SizeStr renders a byte count in a human readable form, e.g. "64.0 KB".
func SizeStr(bytes uint64) string {
	return datasize.ByteSize(bytes).HR()
}
