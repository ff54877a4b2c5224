package payload

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/signing"
)

func TestMultiPayloadJSONRoundTripRawEd25519(t *testing.T) {
	vk, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	raw := RawEd25519Payload{Body: []byte(`{"signer_id":"user1.near"}`)}
	pk := signing.PublicKey{Curve: signing.TagEd25519, Bytes: string(vk)}
	m := NewRawEd25519(raw, []byte{1, 2, 3}, pk)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back MultiPayload
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, StandardRawEd25519, back.Standard)
	assert.Equal(t, m.Signature, back.Signature)
	require.NotNil(t, back.PublicKey)
	assert.Equal(t, pk, *back.PublicKey)
}

func TestMultiPayloadRejectsSolanaStandard(t *testing.T) {
	var m MultiPayload
	err := json.Unmarshal([]byte(`{"standard":"solana","payload":{},"signature":"AA=="}`), &m)
	assert.Error(t, err)
}

func TestMultiPayloadUnsupportedStandardErrorsOnHash(t *testing.T) {
	m := MultiPayload{Standard: "bogus"}
	_, err := m.Hash()
	assert.Error(t, err)
}
