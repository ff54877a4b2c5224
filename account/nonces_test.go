package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceSetSparseWords(t *testing.T) {
	set := newNonceSet()

	var n1, n2 Nonce
	n1[30] = 0xAA
	n1[31] = 5
	n2[30] = 0xAA
	n2[31] = 9

	assert.True(t, set.commit(n1))
	assert.True(t, set.commit(n2), "distinct bit in the same word index")
	assert.Len(t, set.words, 1, "both nonces share one 248-bit word index")
	assert.True(t, set.isUsed(n1))
	assert.True(t, set.isUsed(n2))

	var n3 Nonce
	n3[29] = 1
	assert.False(t, set.isUsed(n3))
}

func TestNonceSetCloneIsIndependent(t *testing.T) {
	set := newNonceSet()
	var n Nonce
	n[31] = 1
	set.commit(n)

	clone := set.clone()
	var n2 Nonce
	n2[31] = 2
	clone.commit(n2)

	assert.False(t, set.isUsed(n2), "committing on the clone must not affect the original")
}

func TestNonceJSONRoundTrip(t *testing.T) {
	var n Nonce
	n[0] = 1
	n[31] = 42

	raw, err := json.Marshal(n)
	require.NoError(t, err)

	var back Nonce
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, n, back)
}
