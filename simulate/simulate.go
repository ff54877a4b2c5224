// Package simulate implements the read-only variant of the engine
// that reports minimum deadline and unmatched deltas instead of
// erroring on an unbalanced batch.
package simulate

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/defuse-protocol/defuse-core/account"
	"github.com/defuse-protocol/defuse-core/engine"
	"github.com/defuse-protocol/defuse-core/hostenv"
	"github.com/defuse-protocol/defuse-core/inspector"
	"github.com/defuse-protocol/defuse-core/payload"
	"github.com/defuse-protocol/defuse-core/runtime"
	"github.com/defuse-protocol/defuse-core/token"
)

// FeeState mirrors the fee_pips the output reports.
type FeeState struct {
	FeePips uint32 `json:"fee_pips"`
}

// Output is the result of running a batch read-only.
type Output struct {
	IntentsExecuted []inspector.ExecutedIntent  `json:"intents_executed"`
	MinDeadline     *time.Time                  `json:"min_deadline,omitempty"`
	UnmatchedDeltas map[token.ID]token.Delta    `json:"unmatched_deltas,omitempty"`
	State           FeeState                    `json:"state"`
}

// Run executes payloads against a clone of store — it never mutates
// the caller's store — and returns the simulation output. Unlike
// ExecuteBatch, a non-empty accumulator at the end is not an error:
// it becomes UnmatchedDeltas for an off-chain solver to close.
func Run(store *account.Store, env hostenv.HostEnv, cfg runtime.Config, payloads []payload.MultiPayload) (Output, error) {
	shadow := store.Clone()
	eng := engine.New(shadow, env, cfg, zap.NewNop())
	insp := inspector.NewSimulateInspector()

	// eng is bound to shadow, a throwaway clone: whether this call
	// succeeds, fails on a payload error, or fails the invariant check,
	// the caller's store is never touched.
	err := eng.ExecuteBatch(payloads, insp)

	out := Output{
		IntentsExecuted: insp.Executed(),
		State:           FeeState{FeePips: cfg.FeePips},
	}
	if min, ok := insp.MinDeadline(); ok {
		out.MinDeadline = &min
	}

	if err == nil {
		return out, nil
	}

	var invariant *runtime.InvariantViolatedError
	if errors.As(err, &invariant) {
		out.UnmatchedDeltas = invariant.UnmatchedDeltas
		return out, nil
	}
	return out, err
}
