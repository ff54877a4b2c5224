package payload

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/intent"
	"github.com/defuse-protocol/defuse-core/signing"
)

// nep413PrefixTag is NEP-461's prefix_tag: (1<<31) | nep_number, here
// nep_number=413.
const nep413PrefixTag uint32 = (1 << 31) + 413

// Nep413Payload is the NEAR wallet-standard signing payload.
// Message carries a JSON-encoded Nep413DefuseMessage whose fields are
// hoisted into the resulting Envelope on extraction; Recipient
// becomes the Envelope's VerifyingContract.
type Nep413Payload struct {
	Message     string        `json:"message"`
	Nonce       account.Nonce `json:"nonce"`
	Recipient   string        `json:"recipient"`
	CallbackURL *string       `json:"callback_url,omitempty"`
}

// nep413DefuseMessage is the JSON body hoisted out of Message.
type nep413DefuseMessage struct {
	SignerID string      `json:"signer_id"`
	Deadline string      `json:"deadline"`
	Intents  intent.List `json:"intents"`
}

// Hash computes SHA-256 of the borsh-serialized prefix tag followed
// by the borsh-serialized payload struct, matching NEP-413's wallet
// signing scheme. No Borsh library exists in the available
// dependency set, so the handful of primitives this needs (u32,
// length-prefixed string, fixed byte array, Option<string>) are
// encoded by hand — see DESIGN.md.
func (p Nep413Payload) Hash() [32]byte {
	var buf []byte
	buf = borshU32(buf, nep413PrefixTag)
	buf = borshString(buf, p.Message)
	buf = append(buf, p.Nonce[:]...)
	buf = borshString(buf, p.Recipient)
	buf = borshOptionString(buf, p.CallbackURL)
	return signing.SHA256(buf)
}

func borshU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func borshString(buf []byte, s string) []byte {
	buf = borshU32(buf, uint32(len(s)))
	return append(buf, s...)
}

func borshOptionString(buf []byte, s *string) []byte {
	if s == nil {
		return append(buf, 0x00)
	}
	buf = append(buf, 0x01)
	return borshString(buf, *s)
}

// Verify checks sig against the NEP-413 hash using the caller-
// supplied verifying key's curve (Ed25519 or Secp256k1).
func (p Nep413Payload) Verify(sig []byte, vk signing.PublicKey) (signing.PublicKey, bool) {
	hash := p.Hash()
	curve, err := curveFor(vk.Curve)
	if err != nil {
		return signing.PublicKey{}, false
	}
	return curve.Verify(sig, hash[:], []byte(vk.Bytes))
}

// ExtractDefusePayload hoists the JSON-encoded message, Nonce, and
// Recipient into a uniform Envelope.
func (p Nep413Payload) ExtractDefusePayload() (Envelope, error) {
	var msg nep413DefuseMessage
	if err := json.Unmarshal([]byte(p.Message), &msg); err != nil {
		return Envelope{}, fmt.Errorf("%w: nep413 message: %s", defuseerr.ErrJSON, err)
	}
	deadline, err := time.Parse(time.RFC3339, msg.Deadline)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: nep413 deadline: %s", defuseerr.ErrJSON, err)
	}
	return Envelope{
		SignerID:          msg.SignerID,
		VerifyingContract: p.Recipient,
		Deadline:          deadline.UTC(),
		Nonce:             p.Nonce,
		Intents:           msg.Intents,
	}, nil
}
