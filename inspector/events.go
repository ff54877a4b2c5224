package inspector

import (
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/defuse-protocol/defuse-core/intent"
	"github.com/defuse-protocol/defuse-core/signing"
)

// EventKind discriminates the versioned DefuseEvent records a
// successful batch emits.
type EventKind string

const (
	EventPublicKeyAdded   EventKind = "public_key_added"
	EventPublicKeyRemoved EventKind = "public_key_removed"
	EventTransfer         EventKind = "transfer"
	EventTokenDiff        EventKind = "token_diff"
	EventIntentsExecuted  EventKind = "intents_executed"
	// EventCallbackDescriptor records a multi-token batch transfer's
	// callback hook for a receiving contract.
	EventCallbackDescriptor EventKind = "callback_descriptor"
)

// eventVersion is bumped whenever a record's shape changes; the
// schema is declared stable across upgrades.
const eventVersion = 1

// ExecutedIntent pairs a signer with the hash of the payload that
// authorized it.
type ExecutedIntent struct {
	Signer string `json:"signer_id"`
	Hash   string `json:"hash"`
}

// TransferRecord and TokenDiffRecord are the per-intent facts the
// Execute-inspector buffers before grouping them by kind at emission
// time.
type TransferRecord struct {
	Signer string          `json:"signer_id"`
	Intent intent.Transfer `json:"transfer"`
}

type TokenDiffRecord struct {
	Signer string           `json:"signer_id"`
	Intent intent.TokenDiff `json:"token_diff"`
}

// DefuseEvent is one versioned, kind-tagged record in the emitted
// batch. Data holds the grouped array for its Kind.
type DefuseEvent struct {
	Version int             `json:"version"`
	BatchID uuid.UUID       `json:"batch_id"`
	Kind    EventKind       `json:"event"`
	Data    json.RawMessage `json:"data"`
}

func hashHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

func newEvent(batchID uuid.UUID, kind EventKind, data any) (DefuseEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return DefuseEvent{}, err
	}
	return DefuseEvent{Version: eventVersion, BatchID: batchID, Kind: kind, Data: raw}, nil
}

// keyEvent mirrors the AddPublicKey/RemovePublicKey intents' only
// payload: which signer, which key.
type keyEvent struct {
	Signer string            `json:"signer_id"`
	Key    signing.PublicKey `json:"public_key"`
}

// CallbackDescriptor is the MtBatchTransferCall record: ReceiverID
// and Msg are what the host adapter needs to issue the
// cross-contract promise this core defers to it.
type CallbackDescriptor struct {
	Signer     string `json:"signer_id"`
	ReceiverID string `json:"receiver_id"`
	Msg        string `json:"msg"`
}
