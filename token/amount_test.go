package token

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

func TestAmountAddSub(t *testing.T) {
	a := AmountFromUint64(1000)
	b := AmountFromUint64(400)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "1400", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "600", diff.String())

	_, err = b.Sub(a)
	assert.ErrorIs(t, err, defuseerr.ErrBalanceOverflow)
}

func TestAmount128BitOverflow(t *testing.T) {
	max, err := AmountFromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	require.NoError(t, err)

	_, err = max.Add(AmountFromUint64(1))
	assert.Error(t, err)
}

func TestAmountJSONRoundTrip(t *testing.T) {
	a := AmountFromUint64(123456789)
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"123456789"`, string(raw))

	var back Amount
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, 0, a.Cmp(back))
}
