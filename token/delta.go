package token

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

// Delta is a signed 128-bit token delta, the unit the runtime ledger
// accumulates per token across a batch. math/big.Int is the only
// signed arbitrary-precision type available;
// every mutation is bounds-checked against the 128-bit signed range so
// overflow still errors instead of silently wrapping.
type Delta struct {
	v big.Int
}

var (
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func ZeroDelta() Delta { return Delta{} }

func DeltaFromInt64(v int64) Delta {
	var d Delta
	d.v.SetInt64(v)
	return d
}

// DeltaFromAmount builds a delta from an unsigned Amount, negated
// when neg is true (used by withdraw intents and fee credits to
// record a debit).
func DeltaFromAmount(a Amount, neg bool) Delta {
	var d Delta
	d.v.Set(a.v.ToBig())
	if neg {
		d.v.Neg(&d.v)
	}
	return d
}

func (d Delta) IsZero() bool { return d.v.Sign() == 0 }
func (d Delta) Sign() int    { return d.v.Sign() }

func (d Delta) Add(o Delta) (Delta, error) {
	var sum Delta
	sum.v.Add(&d.v, &o.v)
	if sum.v.Cmp(int128Max) > 0 || sum.v.Cmp(int128Min) < 0 {
		return Delta{}, defuseerr.ErrBalanceOverflow
	}
	return sum, nil
}

func (d Delta) Neg() Delta {
	var n Delta
	n.v.Neg(&d.v)
	return n
}

func (d Delta) String() string { return d.v.String() }

// AsAmount converts a non-negative delta to an Amount, used when a
// token-diff delta (or its negation) is applied to a balance.
func (d Delta) AsAmount() (Amount, error) {
	if d.v.Sign() < 0 {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	var a Amount
	if overflow := a.v.SetFromBig(&d.v); overflow {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	return a, nil
}

func (d Delta) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.v.String())
}

func (d *Delta) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("%w: delta %q", defuseerr.ErrJSON, s)
	}
	if v.Cmp(int128Max) > 0 || v.Cmp(int128Min) < 0 {
		return fmt.Errorf("%w: delta %q exceeds 128 bits", defuseerr.ErrBalanceOverflow, s)
	}
	d.v = *v
	return nil
}
