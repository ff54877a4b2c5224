// Package engine implements the batch execution loop that verifies,
// authorizes, and dispatches each payload's intents, then enforces
// the runtime invariant.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/hostenv"
	"github.com/defuse-protocol/defuse-core/inspector"
	"github.com/defuse-protocol/defuse-core/payload"
	"github.com/defuse-protocol/defuse-core/runtime"
)

// Engine ties a live account Store to a HostEnv and the settlement
// Config, the collaborators ExecuteBatch needs.
type Engine struct {
	Store  *account.Store
	Env    hostenv.HostEnv
	Config runtime.Config
	Log    *zap.Logger
}

func New(store *account.Store, env hostenv.HostEnv, cfg runtime.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{Store: store, Env: env, Config: cfg, Log: log}
}

// ExecuteBatch runs every payload against a scratch clone of Store,
// and only on a fully successful, invariant-satisfying batch does it
// adopt that clone back onto Store — a stage-writes-commit-on-success
// strategy that keeps a rejected batch from ever touching the live
// account table.
func (e *Engine) ExecuteBatch(payloads []payload.MultiPayload, insp inspector.Inspector) error {
	scratch := e.Store.Clone()
	rt := runtime.New(e.Config)
	now := e.Env.Now()

	for i, p := range payloads {
		signerID, err := e.executePayload(scratch, rt, insp, p, now)
		if err != nil {
			e.Log.Warn("batch aborted",
				zap.Int("payload_index", i),
				zap.String("signer_id", signerID),
				zap.Error(err))
			return &defuseerr.BatchError{PayloadIndex: i, SignerID: signerID, Reason: err}
		}
		e.Log.Debug("payload dispatched", zap.Int("payload_index", i), zap.String("signer_id", signerID))
	}

	if err := rt.Finalize(); err != nil {
		e.Log.Warn("batch aborted: invariant violated")
		return err
	}

	e.Store.Adopt(scratch)
	return nil
}

// executePayload runs one payload through hash, verify, extract,
// authorize, and dispatch against the batch's scratch store,
// returning the signer id for error reporting even on failure once
// it has been recovered.
func (e *Engine) executePayload(
	store *account.Store,
	rt *runtime.Runtime,
	insp inspector.Inspector,
	p payload.MultiPayload,
	now time.Time,
) (string, error) {
	hash, err := p.Hash()
	if err != nil {
		return "", err
	}

	pubKey, ok := p.Verify()
	if !ok {
		return "", defuseerr.ErrInvalidSignature
	}

	env, err := p.ExtractDefusePayload()
	if err != nil {
		return "", err
	}

	if env.VerifyingContract != e.Env.CurrentContractID() {
		return env.SignerID, defuseerr.ErrWrongVerifyingContract
	}

	if env.HasExpired(now) {
		return env.SignerID, defuseerr.ErrDeadlineExpired
	}
	insp.OnDeadline(env.Deadline)

	if !store.HasPublicKey(env.SignerID, pubKey) {
		return env.SignerID, defuseerr.ErrInvalidSignature
	}

	if !store.CommitNonce(env.SignerID, env.Nonce) {
		return env.SignerID, defuseerr.ErrNonceUsed
	}

	for _, it := range env.Intents {
		if err := dispatch(store, rt, insp, e.Config, env.SignerID, it); err != nil {
			return env.SignerID, err
		}
	}

	insp.OnIntentExecuted(env.SignerID, hash)
	return env.SignerID, nil
}
