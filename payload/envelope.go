// Package payload implements the four signature standards (NEP-413,
// ERC-191, raw Ed25519, WebAuthn), each producing a canonical hash
// and a DefusePayload envelope, unified behind the MultiPayload
// tagged union.
package payload

import (
	"encoding/json"
	"time"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/intent"
)

// MaxDeadline is the "no expiry" sentinel.
var MaxDeadline = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

// Envelope is DefusePayload<Intents>: the signer-agnostic body
// every standard's payload ultimately carries.
type Envelope struct {
	SignerID          string        `json:"signer_id"`
	VerifyingContract string        `json:"verifying_contract"`
	Deadline          time.Time     `json:"deadline"`
	Nonce             account.Nonce `json:"nonce"`
	Intents           intent.List   `json:"intents"`
}

// HasExpired reports whether now is strictly after the deadline,
// never true for MaxDeadline.
func (e Envelope) HasExpired(now time.Time) bool {
	if e.Deadline.Equal(MaxDeadline) {
		return false
	}
	return now.After(e.Deadline)
}

type envelopeWire struct {
	SignerID          string      `json:"signer_id"`
	VerifyingContract string      `json:"verifying_contract"`
	Deadline          string      `json:"deadline"`
	Nonce             account.Nonce `json:"nonce"`
	Intents           intent.List `json:"intents"`
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelopeWire{
		SignerID:          e.SignerID,
		VerifyingContract: e.VerifyingContract,
		Deadline:          e.Deadline.UTC().Format(time.RFC3339),
		Nonce:             e.Nonce,
		Intents:           e.Intents,
	})
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	var w envelopeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	deadline, err := time.Parse(time.RFC3339, w.Deadline)
	if err != nil {
		return err
	}
	e.SignerID = w.SignerID
	e.VerifyingContract = w.VerifyingContract
	e.Deadline = deadline.UTC()
	e.Nonce = w.Nonce
	e.Intents = w.Intents
	return nil
}
