package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ozontech/truthtab/buildinfo"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, 1.0, testutil.ToFloat64(Version.WithLabelValues(buildinfo.Version)))
}

func TestSecondsBuckets(t *testing.T) {
	assert.Len(t, SecondsBuckets, 13)
	assert.InDelta(t, 0.0001, SecondsBuckets[0], 1e-12)
	assert.Greater(t, SecondsBuckets[len(SecondsBuckets)-1], 50.0)
}
