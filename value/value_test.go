package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuate(t *testing.T) {
	truthy := []string{"t", "T", "tt", "TT", "true", "True", "1", "(1 AND 1)=true", "(x)=TRUE"}
	for _, l := range truthy {
		b, err := Valuate(l)
		require.NoError(t, err, l)
		assert.True(t, b, l)
	}

	falsy := []string{"f", "FF", "false", "FALSE", "0", "(! 1)=false"}
	for _, l := range falsy {
		b, err := Valuate(l)
		require.NoError(t, err, l)
		assert.False(t, b, l)
	}
}

func TestValuateUnknown(t *testing.T) {
	for _, l := range []string{"maybe", "", "2", "A", "truth", "=tru"} {
		_, err := Valuate(l)
		assert.True(t, errors.Is(err, ErrUnknownLiteral), l)
	}
}

func TestValue(t *testing.T) {
	p := Pending("1")
	assert.Equal(t, KindPending, p.Kind())
	b, err := p.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	v := Bool(false, "(1 AND 0)", "(1 AND 0)")
	assert.Equal(t, KindBool, v.Kind())
	assert.Equal(t, "(1 AND 0)=false", v.String())
	assert.Equal(t, "(1 AND 0)", v.Plain())
	b, err = v.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = Pending("X").Bool()
	assert.ErrorIs(t, err, ErrUnknownLiteral)
}

func TestBit(t *testing.T) {
	assert.Equal(t, "1", Bit(true))
	assert.Equal(t, "0", Bit(false))
}
