package trace_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sigcast/pkg/cast"
	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/registry"
	"github.com/aretw0/sigcast/pkg/signal"
	"github.com/aretw0/sigcast/pkg/trace"
)

func TestRecorder_Record(t *testing.T) {
	reg := registry.New()
	require.NoError(t, cast.RegisterBuiltins(reg))

	gain, err := signal.New("gain", domain.KeyDouble, reg)
	require.NoError(t, err)
	pos, err := signal.New("pos", domain.KeyVector, reg)
	require.NoError(t, err)
	idle, err := signal.New("idle", domain.KeyBool, reg)
	require.NoError(t, err)

	var buf bytes.Buffer
	rec := trace.NewRecorder(&buf)
	rec.Add(gain)
	rec.Add(idle)
	rec.Add(pos)

	require.NoError(t, gain.Set("0.5"))
	require.NoError(t, pos.Set("[3](1,2,3)"))
	require.NoError(t, rec.Record())

	require.NoError(t, pos.Set("[3](4 5 6)"))
	require.NoError(t, rec.Record())

	assert.Equal(t, "gain 1 0.5\npos 1 1 2 3 \ngain 1 0.5\npos 2 4 5 6 \n", buf.String())
}

func TestRecorder_CollectsErrors(t *testing.T) {
	reg := registry.New()
	require.NoError(t, cast.RegisterBuiltins(reg))

	gain, err := signal.New("gain", domain.KeyDouble, reg)
	require.NoError(t, err)
	require.NoError(t, gain.Set("1"))

	var buf bytes.Buffer
	rec := trace.NewRecorder(&buf)
	rec.Add(gain)

	require.NoError(t, reg.Close())
	err = rec.Record()
	assert.ErrorIs(t, err, domain.ErrRegistryClosed)
	assert.Empty(t, buf.String())
}
