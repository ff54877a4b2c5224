package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/token"
)

func TestFinalizeZeroSumOk(t *testing.T) {
	r := New(Config{})
	ft1 := token.NewNative("ft1.near")
	ft2 := token.NewNative("ft2.near")

	require.NoError(t, r.AddDelta(ft1, token.DeltaFromInt64(-1000)))
	require.NoError(t, r.AddDelta(ft2, token.DeltaFromInt64(2000)))
	require.NoError(t, r.AddDelta(ft1, token.DeltaFromInt64(1000)))
	require.NoError(t, r.AddDelta(ft2, token.DeltaFromInt64(-2000)))

	assert.NoError(t, r.Finalize())
}

func TestFinalizeUnmatchedFails(t *testing.T) {
	r := New(Config{})
	ft1 := token.NewNative("ft1.near")

	require.NoError(t, r.AddDelta(ft1, token.DeltaFromInt64(-500)))

	err := r.Finalize()
	require.Error(t, err)

	var invariant *InvariantViolatedError
	require.True(t, errors.As(err, &invariant))
	assert.Equal(t, "-500", invariant.UnmatchedDeltas[ft1].String())
}

func TestUnmatchedDeltasDropsZeroEntries(t *testing.T) {
	r := New(Config{})
	ft1 := token.NewNative("ft1.near")

	require.NoError(t, r.AddDelta(ft1, token.DeltaFromInt64(500)))
	require.NoError(t, r.AddDelta(ft1, token.DeltaFromInt64(-500)))

	assert.Empty(t, r.UnmatchedDeltas())
}
