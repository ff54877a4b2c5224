package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/signing"
	"github.com/defuse-protocol/defuse-core/token"
)

func key(b byte) signing.PublicKey {
	var raw [32]byte
	raw[0] = b
	return signing.PublicKey{Curve: signing.TagEd25519, Bytes: string(raw[:])}
}

func TestAddRemovePublicKey(t *testing.T) {
	s := NewStore()
	k1 := key(1)

	assert.True(t, s.AddPublicKey("user1", k1))
	assert.False(t, s.AddPublicKey("user1", k1), "re-adding the same key is a no-op, not newly-added")
	assert.True(t, s.HasPublicKey("user1", k1))

	assert.True(t, s.RemovePublicKey("user1", k1))
	assert.False(t, s.HasPublicKey("user1", k1))
	assert.False(t, s.RemovePublicKey("user1", k1), "removing an absent key reports false")
}

func TestNonceCommitIsOnceOnly(t *testing.T) {
	s := NewStore()
	var n Nonce
	n[0] = 7

	assert.False(t, s.IsNonceUsed("user1", n))
	assert.True(t, s.CommitNonce("user1", n))
	assert.True(t, s.IsNonceUsed("user1", n))
	assert.False(t, s.CommitNonce("user1", n), "replay must report already-used")
}

func TestDepositWithdrawBalance(t *testing.T) {
	s := NewStore()
	ft1 := token.NewNative("ft1.near")

	require.NoError(t, s.Deposit("user1", ft1, token.AmountFromUint64(1000)))
	assert.Equal(t, 0, s.BalanceOf("user1", ft1).Cmp(token.AmountFromUint64(1000)))

	require.NoError(t, s.Withdraw("user1", ft1, token.AmountFromUint64(400)))
	assert.Equal(t, 0, s.BalanceOf("user1", ft1).Cmp(token.AmountFromUint64(600)))

	err := s.Withdraw("user1", ft1, token.AmountFromUint64(10000))
	assert.Error(t, err)
}

func TestWithdrawFromUnknownAccountFails(t *testing.T) {
	s := NewStore()
	err := s.Withdraw("ghost", token.NewNative("ft1.near"), token.AmountFromUint64(1))
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewStore()
	ft1 := token.NewNative("ft1.near")
	require.NoError(t, s.Deposit("user1", ft1, token.AmountFromUint64(1000)))

	clone := s.Clone()
	require.NoError(t, clone.Deposit("user1", ft1, token.AmountFromUint64(500)))

	assert.Equal(t, 0, s.BalanceOf("user1", ft1).Cmp(token.AmountFromUint64(1000)), "original untouched by clone mutation")
	assert.Equal(t, 0, clone.BalanceOf("user1", ft1).Cmp(token.AmountFromUint64(1500)))

	s.Adopt(clone)
	assert.Equal(t, 0, s.BalanceOf("user1", ft1).Cmp(token.AmountFromUint64(1500)), "adopt swaps in the clone's state")
}
