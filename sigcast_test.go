package sigcast_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sigcast"
	"github.com/aretw0/sigcast/pkg/cast"
	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/observability"
)

func TestEngine_Lifecycle(t *testing.T) {
	eng, err := sigcast.New()
	require.NoError(t, err)

	assert.Len(t, eng.Registry().Keys(), 9)

	gain, err := eng.NewSignal("gain", domain.KeyDouble)
	require.NoError(t, err)
	require.NoError(t, gain.Set("42.0"))

	got, err := eng.Signals().Lookup("gain")
	require.NoError(t, err)
	out, err := got.Get()
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	_, err = eng.NewSignal("gain", domain.KeyInt)
	assert.ErrorIs(t, err, domain.ErrDuplicateSignal)

	require.NoError(t, eng.Close())
	_, err = gain.Get()
	assert.ErrorIs(t, err, domain.ErrRegistryClosed)
}

func TestEngine_WithoutBuiltins(t *testing.T) {
	eng, err := sigcast.New(sigcast.WithoutBuiltins())
	require.NoError(t, err)
	assert.Equal(t, 0, eng.Registry().Len())

	sig, err := eng.NewSignal("x", domain.KeyDouble)
	require.NoError(t, err)
	assert.ErrorIs(t, sig.Set("1"), domain.ErrUnknownType)

	require.NoError(t, eng.Register(cast.Entry(domain.KeyDouble, cast.DefaultCodec[float64](domain.KeyDouble))))
	require.NoError(t, sig.Set("1"))
}

func TestEngine_PluginRegistrationSameKey(t *testing.T) {
	eng, err := sigcast.New()
	require.NoError(t, err)

	// A second package registering the same logical type under the same key
	// is rejected, and both sides keep resolving to the first entry.
	err = eng.Register(cast.Entry(domain.KeyVector, cast.VectorCodec()))
	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)

	sig, err := eng.NewSignal("v", domain.KeyVector)
	require.NoError(t, err)
	require.NoError(t, sig.Set("[2](1,2)"))
}

func TestEngine_Metrics(t *testing.T) {
	promReg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(promReg)
	require.NoError(t, err)

	eng, err := sigcast.New(sigcast.WithMetrics(metrics))
	require.NoError(t, err)

	sig, err := eng.NewSignal("gain", domain.KeyDouble)
	require.NoError(t, err)
	require.Error(t, sig.Set("not a number"))

	expected := `
# HELP sigcast_cast_operations_total Textual signal operations by type key, operation and result
# TYPE sigcast_cast_operations_total counter
sigcast_cast_operations_total{op="set",result="ConversionFailure",type="double"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(promReg, strings.NewReader(expected), "sigcast_cast_operations_total"))

	require.NoError(t, eng.Close())
	expected = `
# HELP sigcast_registered_types Number of type keys with a live cast entry
# TYPE sigcast_registered_types gauge
sigcast_registered_types 0
`
	assert.NoError(t, testutil.GatherAndCompare(promReg, strings.NewReader(expected), "sigcast_registered_types"))
}
