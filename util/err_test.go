package util

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverToError(t *testing.T) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_panics_total"})

	assert.NoError(t, RecoverToError(nil, counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(counter))

	cause := errors.New("boom")
	err := func() (err error) {
		defer func() {
			err = RecoverToError(recover(), counter)
		}()
		panic(cause)
	}()

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsRecoveredPanicError(err))
	assert.Equal(t, "panic: boom", err.Error())
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))

	err = RecoverToError("text panic", counter)
	assert.EqualError(t, err, "panic: text panic")

	var p *PanicError
	require.ErrorAs(t, err, &p)
	assert.NotEmpty(t, p.Stack)
}

func TestIsRecoveredPanicError(t *testing.T) {
	assert.False(t, IsRecoveredPanicError(nil))
	assert.False(t, IsRecoveredPanicError(errors.New("plain")))

	var s []int
	err := func() (err error) {
		defer func() {
			err = recover().(error)
		}()
		_ = s[1]
		return nil
	}()
	assert.True(t, IsRecoveredPanicError(err))
}

func TestSizeStr(t *testing.T) {
	assert.Equal(t, "64.0 KB", SizeStr(64*1024))
}
