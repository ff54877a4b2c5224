package payload

import (
	"encoding/json"
	"fmt"

	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
)

// Erc191Payload carries the exact JSON bytes of a DefusePayload as
// they were signed. Hashing must run over those literal bytes, not
// a re-serialization, so Body is kept as raw JSON rather than a
// parsed Envelope.
type Erc191Payload struct {
	Body json.RawMessage
}

// MarshalJSON/UnmarshalJSON pass the body through verbatim: the wire
// "payload" field for this standard *is* the literal signed bytes,
// not a wrapper object.
func (p Erc191Payload) MarshalJSON() ([]byte, error) {
	return p.Body, nil
}

func (p *Erc191Payload) UnmarshalJSON(data []byte) error {
	p.Body = append(json.RawMessage(nil), data...)
	return nil
}

func (p Erc191Payload) Hash() [32]byte {
	return signing.ERC191Hash(p.Body)
}

// Verify recovers the signer's Secp256k1 key from a 65-byte
// recoverable signature; no verifying key is needed.
func (p Erc191Payload) Verify(sig []byte) (signing.PublicKey, bool) {
	hash := p.Hash()
	return signing.Secp256k1.Verify(sig, hash[:], nil)
}

func (p Erc191Payload) ExtractDefusePayload() (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(p.Body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: erc191 body: %s", defuseerr.ErrJSON, err)
	}
	return env, nil
}
