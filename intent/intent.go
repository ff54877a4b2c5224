// Package intent defines the tagged union of intent variants a
// DefusePayload carries, and each variant's declared fields.
// Execution semantics live in the engine package — this package
// only models the data.
package intent

import (
	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/signing"
	"github.com/defuse-protocol/defuse-core/token"
)

type Kind string

const (
	KindAddPublicKey         Kind = "add_public_key"
	KindRemovePublicKey      Kind = "remove_public_key"
	KindInvalidateNonces     Kind = "invalidate_nonces"
	KindTransfer             Kind = "transfer"
	KindTokenDiff            Kind = "token_diff"
	KindFtWithdraw           Kind = "ft_withdraw"
	KindNftWithdraw          Kind = "nft_withdraw"
	KindMtWithdraw           Kind = "mt_withdraw"
	KindNativeWithdraw       Kind = "native_withdraw"
	KindMtBatchTransfer      Kind = "mt_batch_transfer"
	KindMtBatchTransferCall  Kind = "mt_batch_transfer_call"
)

// Intent is implemented by every variant struct below. Kind
// identifies which one for the tagged-union JSON codec.
type Intent interface {
	Kind() Kind
}

type AddPublicKey struct {
	Key signing.PublicKey `json:"public_key"`
}

func (AddPublicKey) Kind() Kind { return KindAddPublicKey }

type RemovePublicKey struct {
	Key signing.PublicKey `json:"public_key"`
}

func (RemovePublicKey) Kind() Kind { return KindRemovePublicKey }

type InvalidateNonces struct {
	Nonces []account.Nonce `json:"nonces"`
}

func (InvalidateNonces) Kind() Kind { return KindInvalidateNonces }

// Transfer moves balances from the signer to Receiver for every
// (token, amount) pair in Tokens. Purely internal: it never touches
// the runtime delta accumulator.
type Transfer struct {
	Receiver string                   `json:"receiver_id"`
	Tokens   map[token.ID]token.Amount `json:"tokens"`
	Memo     string                   `json:"memo,omitempty"`
}

func (Transfer) Kind() Kind { return KindTransfer }

// TokenDiff is the clearing primitive: each signed delta is applied
// to the signer's own balance and folded into the runtime
// accumulator; the batch only clears if every signer's contributions
// net to zero per token (after fees).
//
// QueryID is an optional caller-supplied tag carried with the intent
// through JSON and into ExecuteInspector's token-diff records; the
// simulation output does not report it.
type TokenDiff struct {
	Deltas  map[token.ID]token.Delta `json:"diff"`
	QueryID *uint64                  `json:"query_id,omitempty"`
}

func (TokenDiff) Kind() Kind { return KindTokenDiff }

type FtWithdraw struct {
	Token    string  `json:"token"`
	Receiver string  `json:"receiver_id"`
	Amount   token.Amount `json:"amount"`
	Memo     string  `json:"memo,omitempty"`
	Msg      *string `json:"msg,omitempty"`
	// Gas is an opaque hint forwarded to the host adapter, unread by
	// the engine.
	Gas *uint64 `json:"gas,omitempty"`
}

func (FtWithdraw) Kind() Kind { return KindFtWithdraw }

type NftWithdraw struct {
	Token    string  `json:"token"`
	Receiver string  `json:"receiver_id"`
	Instance string  `json:"token_id"`
	Memo     string  `json:"memo,omitempty"`
	Msg      *string `json:"msg,omitempty"`
	Gas      *uint64 `json:"gas,omitempty"`
}

func (NftWithdraw) Kind() Kind { return KindNftWithdraw }

type MtWithdraw struct {
	Token     string         `json:"token"`
	Receiver  string         `json:"receiver_id"`
	Instances []string       `json:"token_ids"`
	Amounts   []token.Amount `json:"amounts"`
	Memo      string         `json:"memo,omitempty"`
	Msg       *string        `json:"msg,omitempty"`
	Gas       *uint64        `json:"gas,omitempty"`
}

func (MtWithdraw) Kind() Kind { return KindMtWithdraw }

// NativeWithdraw unwraps the fixed wrapped-native token (the
// wnear_id fixed in runtime config).
type NativeWithdraw struct {
	Receiver string       `json:"receiver_id"`
	Amount   token.Amount `json:"amount"`
}

func (NativeWithdraw) Kind() Kind { return KindNativeWithdraw }

type MtBatchTransfer struct {
	Receiver  string         `json:"receiver_id"`
	Token     string         `json:"token"`
	Instances []string       `json:"token_ids"`
	Amounts   []token.Amount `json:"amounts"`
	Memo      string         `json:"memo,omitempty"`
}

func (MtBatchTransfer) Kind() Kind { return KindMtBatchTransfer }

// MtBatchTransferCall is MtBatchTransfer plus a callback descriptor:
// the host adapter is expected to issue a cross-contract promise
// carrying Msg to Receiver after the local transfer lands.
type MtBatchTransferCall struct {
	Receiver  string         `json:"receiver_id"`
	Token     string         `json:"token"`
	Instances []string       `json:"token_ids"`
	Amounts   []token.Amount `json:"amounts"`
	Memo      string         `json:"memo,omitempty"`
	Msg       string         `json:"msg"`
}

func (MtBatchTransferCall) Kind() Kind { return KindMtBatchTransferCall }
