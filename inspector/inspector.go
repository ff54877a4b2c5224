// Package inspector defines the capability set the engine reports
// intent effects through, and the two concrete inspectors that use
// it: one that buffers events for a successful batch, one that
// tracks only what a simulation needs.
package inspector

import (
	"time"

	"github.com/defuse-protocol/defuse-core/intent"
	"github.com/defuse-protocol/defuse-core/signing"
)

// Inspector is the capability set the engine reports through while
// dispatching a batch.
type Inspector interface {
	OnDeadline(deadline time.Time)
	OnPublicKeyAdded(signer string, key signing.PublicKey)
	OnPublicKeyRemoved(signer string, key signing.PublicKey)
	OnTransfer(signer string, t intent.Transfer)
	OnTokenDiff(owner string, d intent.TokenDiff)
	OnIntentExecuted(signer string, hash [32]byte)
	// OnCallback records an MtBatchTransferCall's callback descriptor
	// for the host adapter to issue as a cross-contract promise.
	OnCallback(signer, receiver, msg string)
}
