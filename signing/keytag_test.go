package signing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyStringRoundTrip(t *testing.T) {
	raw := make([]byte, 32)
	raw[0], raw[31] = 1, 2
	pk := PublicKey{Curve: TagEd25519, Bytes: string(raw)}

	parsed, err := ParsePublicKey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk.Curve, parsed.Curve)
	assert.Equal(t, pk.Bytes, parsed.Bytes)
}

func TestParsePublicKeyBareBase58DefaultsEd25519(t *testing.T) {
	raw := make([]byte, 32)
	raw[0] = 9
	tagged := PublicKey{Curve: TagEd25519, Bytes: string(raw)}.String()
	_, bare, ok := strings.Cut(tagged, ":")
	require.True(t, ok)

	parsed, err := ParsePublicKey(bare)
	require.NoError(t, err)
	assert.Equal(t, TagEd25519, parsed.Curve)
}

func TestParsePublicKeyRejectsUnknownCurve(t *testing.T) {
	_, err := ParsePublicKey("bogus:11111111111111111111111111111111")
	assert.Error(t, err)
}
