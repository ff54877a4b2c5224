package payload

import (
	"encoding/json"
	"fmt"

	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
)

// RawEd25519Payload hashes the literal UTF-8 body bytes directly;
// the signer's public key travels alongside the signature since
// Ed25519 cannot recover one.
type RawEd25519Payload struct {
	Body json.RawMessage
}

func (p RawEd25519Payload) MarshalJSON() ([]byte, error) {
	return p.Body, nil
}

func (p *RawEd25519Payload) UnmarshalJSON(data []byte) error {
	p.Body = append(json.RawMessage(nil), data...)
	return nil
}

func (p RawEd25519Payload) Hash() [32]byte {
	return signing.SHA256(p.Body)
}

func (p RawEd25519Payload) Verify(sig []byte, vk signing.PublicKey) (signing.PublicKey, bool) {
	hash := p.Hash()
	return signing.Ed25519.Verify(sig, hash[:], []byte(vk.Bytes))
}

func (p RawEd25519Payload) ExtractDefusePayload() (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(p.Body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: raw_ed25519 body: %s", defuseerr.ErrJSON, err)
	}
	return env, nil
}
