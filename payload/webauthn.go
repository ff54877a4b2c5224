package payload

import (
	"encoding/json"
	"fmt"

	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
)

// WebAuthnPayload hashes the JSON body of the already-complete
// DefusePayload. Verification is delegated to whichever curve the
// authenticator actually attested — P-256 for platform
// authenticators, Ed25519 for security keys that support it.
type WebAuthnPayload struct {
	Body json.RawMessage
}

func (p WebAuthnPayload) MarshalJSON() ([]byte, error) {
	return p.Body, nil
}

func (p *WebAuthnPayload) UnmarshalJSON(data []byte) error {
	p.Body = append(json.RawMessage(nil), data...)
	return nil
}

func (p WebAuthnPayload) Hash() [32]byte {
	return signing.SHA256(p.Body)
}

func (p WebAuthnPayload) Verify(sig []byte, vk signing.PublicKey) (signing.PublicKey, bool) {
	curve, err := curveFor(vk.Curve)
	if err != nil {
		return signing.PublicKey{}, false
	}
	hash := p.Hash()
	return curve.Verify(sig, hash[:], []byte(vk.Bytes))
}

func (p WebAuthnPayload) ExtractDefusePayload() (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(p.Body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: webauthn body: %s", defuseerr.ErrJSON, err)
	}
	return env, nil
}
