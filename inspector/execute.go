package inspector

import (
	"time"

	"github.com/google/uuid"

	"github.com/defuse-protocol/defuse-core/intent"
	"github.com/defuse-protocol/defuse-core/signing"
)

// ExecuteInspector buffers every per-intent fact during a batch and
// only turns them into DefuseEvent records on Emit — so an aborted
// batch, which never calls Emit, produces nothing.
type ExecuteInspector struct {
	batchID uuid.UUID

	keysAdded   []keyEvent
	keysRemoved []keyEvent
	transfers   []TransferRecord
	tokenDiffs  []TokenDiffRecord
	executed    []ExecutedIntent
	callbacks   []CallbackDescriptor
}

func NewExecuteInspector() *ExecuteInspector {
	return &ExecuteInspector{batchID: uuid.New()}
}

func (e *ExecuteInspector) OnDeadline(time.Time) {}

func (e *ExecuteInspector) OnPublicKeyAdded(signer string, key signing.PublicKey) {
	e.keysAdded = append(e.keysAdded, keyEvent{Signer: signer, Key: key})
}

func (e *ExecuteInspector) OnPublicKeyRemoved(signer string, key signing.PublicKey) {
	e.keysRemoved = append(e.keysRemoved, keyEvent{Signer: signer, Key: key})
}

func (e *ExecuteInspector) OnTransfer(signer string, t intent.Transfer) {
	e.transfers = append(e.transfers, TransferRecord{Signer: signer, Intent: t})
}

func (e *ExecuteInspector) OnTokenDiff(owner string, d intent.TokenDiff) {
	e.tokenDiffs = append(e.tokenDiffs, TokenDiffRecord{Signer: owner, Intent: d})
}

func (e *ExecuteInspector) OnIntentExecuted(signer string, hash [32]byte) {
	e.executed = append(e.executed, ExecutedIntent{Signer: signer, Hash: hashHex(hash)})
}

func (e *ExecuteInspector) OnCallback(signer, receiver, msg string) {
	e.callbacks = append(e.callbacks, CallbackDescriptor{Signer: signer, ReceiverID: receiver, Msg: msg})
}

// Emit materializes the buffered facts into grouped DefuseEvent
// records, called only once the engine knows the batch cleared.
func (e *ExecuteInspector) Emit() ([]DefuseEvent, error) {
	var out []DefuseEvent
	groups := []struct {
		kind EventKind
		data any
		n    int
	}{
		{EventPublicKeyAdded, e.keysAdded, len(e.keysAdded)},
		{EventPublicKeyRemoved, e.keysRemoved, len(e.keysRemoved)},
		{EventTransfer, e.transfers, len(e.transfers)},
		{EventTokenDiff, e.tokenDiffs, len(e.tokenDiffs)},
		{EventIntentsExecuted, e.executed, len(e.executed)},
		{EventCallbackDescriptor, e.callbacks, len(e.callbacks)},
	}
	for _, g := range groups {
		if g.n == 0 {
			continue
		}
		ev, err := newEvent(e.batchID, g.kind, g.data)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}
