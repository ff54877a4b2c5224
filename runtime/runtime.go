// Package runtime implements the per-batch transient delta
// accumulator and the zero-sum invariant it enforces at finalize.
package runtime

import (
	"github.com/defuse-protocol/defuse-core/token"
)

// Config is the global settlement parameters a batch runs against.
// It is a plain struct, not a config-loading library.
type Config struct {
	WnearID      string
	FeePips      uint32
	FeeCollector string
	// ReferralShares optionally splits the fee between FeeCollector
	// and ReferralCollector; off by default.
	ReferralShares    uint32
	ReferralCollector string
}

// Runtime is the per-batch transient ledger: created fresh per batch
// execution, destroyed at Finalize.
type Runtime struct {
	cfg   Config
	delta map[token.ID]token.Delta
}

func New(cfg Config) *Runtime {
	return &Runtime{cfg: cfg, delta: make(map[token.ID]token.Delta)}
}

func (r *Runtime) Config() Config { return r.cfg }

// AddDelta folds Δ into the running per-token accumulator. Internal
// transfers between local accounts never call this.
func (r *Runtime) AddDelta(t token.ID, delta token.Delta) error {
	sum, err := r.delta[t].Add(delta)
	if err != nil {
		return err
	}
	r.delta[t] = sum
	return nil
}

// Finalize drops exactly-zero entries and fails InvariantViolated if
// anything remains.
func (r *Runtime) Finalize() error {
	leftover := r.nonZeroDeltas()
	if len(leftover) == 0 {
		return nil
	}
	return &InvariantViolatedError{UnmatchedDeltas: leftover}
}

// UnmatchedDeltas reports the current non-zero accumulator contents
// without finalizing, the shape the simulation driver needs: there,
// a non-empty result is data, not an error.
func (r *Runtime) UnmatchedDeltas() map[token.ID]token.Delta {
	return r.nonZeroDeltas()
}

func (r *Runtime) nonZeroDeltas() map[token.ID]token.Delta {
	out := make(map[token.ID]token.Delta, len(r.delta))
	for t, d := range r.delta {
		if !d.IsZero() {
			out[t] = d
		}
	}
	return out
}
