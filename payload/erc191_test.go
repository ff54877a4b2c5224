package payload

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/signing"
)

func TestErc191VerifyRecoversSigner(t *testing.T) {
	sk, err := crypto.GenerateKey()
	require.NoError(t, err)

	body := []byte(`{"signer_id":"0xabc","verifying_contract":"intents.near","deadline":"2030-01-01T00:00:00Z","nonce":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=","intents":[]}`)
	p := Erc191Payload{Body: body}

	hash := p.Hash()
	sig, err := crypto.Sign(hash[:], sk)
	require.NoError(t, err)

	got, ok := p.Verify(sig)
	require.True(t, ok)

	wantPub := crypto.FromECDSAPub(&sk.PublicKey)
	assert.Equal(t, signing.TagSecp256k1, got.Curve)
	assert.Equal(t, string(wantPub[1:]), got.Bytes)
}

func TestErc191BodyPassthroughPreservesBytes(t *testing.T) {
	body := []byte(`{"a":1}`)
	p := Erc191Payload{Body: body}
	raw, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, body, []byte(raw))
}
