package payload

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
)

// Standard is the wire discriminator of MultiPayload's "standard"
// field.
type Standard string

const (
	StandardNep413     Standard = "nep413"
	StandardErc191     Standard = "erc191"
	StandardRawEd25519 Standard = "raw_ed25519"
	StandardWebAuthn   Standard = "webauthn"
	// StandardSolana is accepted at the JSON level but always rejected
	// with ErrUnsupportedStandard: there is no Solana off-chain-message
	// verifier wired in.
	StandardSolana Standard = "solana"
)

// MultiPayload is the tagged union every payload standard unifies
// behind: uniform Hash, Verify, and ExtractDefusePayload.
type MultiPayload struct {
	Standard  Standard
	Signature []byte
	PublicKey *signing.PublicKey

	nep413     *Nep413Payload
	erc191     *Erc191Payload
	rawEd25519 *RawEd25519Payload
	webAuthn   *WebAuthnPayload
}

func NewNep413(p Nep413Payload, sig []byte) MultiPayload {
	return MultiPayload{Standard: StandardNep413, Signature: sig, nep413: &p}
}

func NewErc191(p Erc191Payload, sig []byte) MultiPayload {
	return MultiPayload{Standard: StandardErc191, Signature: sig, erc191: &p}
}

func NewRawEd25519(p RawEd25519Payload, sig []byte, vk signing.PublicKey) MultiPayload {
	return MultiPayload{Standard: StandardRawEd25519, Signature: sig, rawEd25519: &p, PublicKey: &vk}
}

func NewWebAuthn(p WebAuthnPayload, sig []byte, vk signing.PublicKey) MultiPayload {
	return MultiPayload{Standard: StandardWebAuthn, Signature: sig, webAuthn: &p, PublicKey: &vk}
}

// Hash returns the standard-specific canonical digest.
func (m MultiPayload) Hash() ([32]byte, error) {
	switch m.Standard {
	case StandardNep413:
		return m.nep413.Hash(), nil
	case StandardErc191:
		return m.erc191.Hash(), nil
	case StandardRawEd25519:
		return m.rawEd25519.Hash(), nil
	case StandardWebAuthn:
		return m.webAuthn.Hash(), nil
	default:
		return [32]byte{}, fmt.Errorf("%w: %s", defuseerr.ErrUnsupportedStandard, m.Standard)
	}
}

// Verify dispatches to the standard's verifier and returns the
// recovered or confirmed public key.
func (m MultiPayload) Verify() (signing.PublicKey, bool) {
	switch m.Standard {
	case StandardNep413:
		if m.PublicKey == nil {
			return signing.PublicKey{}, false
		}
		return m.nep413.Verify(m.Signature, *m.PublicKey)
	case StandardErc191:
		return m.erc191.Verify(m.Signature)
	case StandardRawEd25519:
		if m.PublicKey == nil {
			return signing.PublicKey{}, false
		}
		return m.rawEd25519.Verify(m.Signature, *m.PublicKey)
	case StandardWebAuthn:
		if m.PublicKey == nil {
			return signing.PublicKey{}, false
		}
		return m.webAuthn.Verify(m.Signature, *m.PublicKey)
	default:
		return signing.PublicKey{}, false
	}
}

// ExtractDefusePayload hoists the standard-specific body into a
// uniform Envelope.
func (m MultiPayload) ExtractDefusePayload() (Envelope, error) {
	switch m.Standard {
	case StandardNep413:
		return m.nep413.ExtractDefusePayload()
	case StandardErc191:
		return m.erc191.ExtractDefusePayload()
	case StandardRawEd25519:
		return m.rawEd25519.ExtractDefusePayload()
	case StandardWebAuthn:
		return m.webAuthn.ExtractDefusePayload()
	default:
		return Envelope{}, fmt.Errorf("%w: %s", defuseerr.ErrUnsupportedStandard, m.Standard)
	}
}

type multiPayloadWire struct {
	Standard  Standard          `json:"standard"`
	Payload   json.RawMessage   `json:"payload"`
	Signature string            `json:"signature"`
	PublicKey *signing.PublicKey `json:"public_key,omitempty"`
}

func (m MultiPayload) MarshalJSON() ([]byte, error) {
	w := multiPayloadWire{
		Standard:  m.Standard,
		Signature: base64.StdEncoding.EncodeToString(m.Signature),
		PublicKey: m.PublicKey,
	}
	var (
		body []byte
		err  error
	)
	switch m.Standard {
	case StandardNep413:
		body, err = json.Marshal(m.nep413)
	case StandardErc191:
		body, err = json.Marshal(m.erc191)
	case StandardRawEd25519:
		body, err = json.Marshal(m.rawEd25519)
	case StandardWebAuthn:
		body, err = json.Marshal(m.webAuthn)
	default:
		return nil, fmt.Errorf("%w: %s", defuseerr.ErrUnsupportedStandard, m.Standard)
	}
	if err != nil {
		return nil, err
	}
	w.Payload = body
	return json.Marshal(w)
}

func (m *MultiPayload) UnmarshalJSON(data []byte) error {
	var w multiPayloadWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %s", defuseerr.ErrJSON, err)
	}
	sig, err := base64.StdEncoding.DecodeString(w.Signature)
	if err != nil {
		return fmt.Errorf("%w: signature: %s", defuseerr.ErrJSON, err)
	}
	m.Standard = w.Standard
	m.Signature = sig
	m.PublicKey = w.PublicKey

	switch w.Standard {
	case StandardNep413:
		var p Nep413Payload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		m.nep413 = &p
	case StandardErc191:
		var p Erc191Payload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		m.erc191 = &p
	case StandardRawEd25519:
		var p RawEd25519Payload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		m.rawEd25519 = &p
	case StandardWebAuthn:
		var p WebAuthnPayload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		m.webAuthn = &p
	case StandardSolana:
		return fmt.Errorf("%w: solana", defuseerr.ErrUnsupportedStandard)
	default:
		return fmt.Errorf("%w: %s", defuseerr.ErrUnsupportedStandard, w.Standard)
	}
	return nil
}
