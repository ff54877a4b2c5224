package signing

import (
	"crypto/ecdsa"
	stded25519 "crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519VerifyRoundTrip(t *testing.T) {
	vk, sk, err := stded25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("defuse settlement payload")
	sig := stded25519.Sign(sk, msg)

	got, ok := Ed25519.Verify(sig, msg, vk)
	require.True(t, ok)
	assert.Equal(t, TagEd25519, got.Curve)
	assert.Equal(t, string(vk), got.Bytes)

	_, ok = Ed25519.Verify(sig, []byte("tampered"), vk)
	assert.False(t, ok, "changing the message must reject")
}

func TestSecp256k1RecoversKeyAndRejectsHighS(t *testing.T) {
	sk, err := crypto.GenerateKey()
	require.NoError(t, err)

	var msg [32]byte
	msg[0] = 0xAB
	sig, err := crypto.Sign(msg[:], sk)
	require.NoError(t, err)

	got, ok := Secp256k1.Verify(sig, msg[:], nil)
	require.True(t, ok)

	wantPub := crypto.FromECDSAPub(&sk.PublicKey)
	assert.Equal(t, string(wantPub[1:]), got.Bytes)

	// go-ethereum's crypto.Sign always returns low-s; force a
	// high-s variant by negating s mod N and confirm rejection.
	high := append([]byte(nil), sig...)
	s := new(big.Int).SetBytes(high[32:64])
	n := crypto.S256().Params().N
	highS := new(big.Int).Sub(n, s)
	copy(high[32:64], leftPad32(highS.Bytes()))

	_, ok = Secp256k1.Verify(high, msg[:], nil)
	assert.False(t, ok, "high-s signatures must be rejected")
}

func TestP256VerifyRoundTrip(t *testing.T) {
	sk, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	var msg [32]byte
	msg[0] = 0xCD

	r, s, err := ecdsa.Sign(rand.Reader, sk, msg[:])
	require.NoError(t, err)

	halfOrder := new(big.Int).Rsh(elliptic.P256().Params().N, 1)
	if s.Cmp(halfOrder) > 0 {
		s = new(big.Int).Sub(elliptic.P256().Params().N, s)
	}

	sig := append(leftPad32(r.Bytes()), leftPad32(s.Bytes())...)
	vk := append(leftPad32(sk.X.Bytes()), leftPad32(sk.Y.Bytes())...)

	got, ok := P256.Verify(sig, msg[:], vk)
	require.True(t, ok)
	assert.Equal(t, TagP256, got.Curve)
}

func leftPad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
