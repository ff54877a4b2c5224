package token

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

// Amount is an unsigned 128-bit balance. uint256.Int is a 256-bit
// integer, but every arithmetic path here checks the result still
// fits in 128 bits, matching the account balance's declared width,
// while reusing the pack's only big-integer type with fast,
// allocation-free arithmetic.
type Amount struct {
	v uint256.Int
}

var max128 = new(uint256.Int).Sub(
	new(uint256.Int).Lsh(uint256.NewInt(1), 128),
	uint256.NewInt(1),
)

func AmountFromUint64(v uint64) Amount {
	return Amount{v: *uint256.NewInt(v)}
}

func (a Amount) IsZero() bool { return a.v.IsZero() }

func (a Amount) Cmp(b Amount) int { return a.v.Cmp(&b.v) }

// Add returns a+b, erroring if the sum overflows 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var sum uint256.Int
	if sum.AddOverflow(&a.v, &b.v) {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	if sum.Gt(max128) {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	return Amount{v: sum}, nil
}

// Sub returns a-b, erroring if b>a (balances never go negative).
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.v.Lt(&b.v) {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	var diff uint256.Int
	diff.Sub(&a.v, &b.v)
	return Amount{v: diff}, nil
}

// AsBig exposes the amount as a *big.Int for fee arithmetic (pips
// multiplication needs headroom uint256 doesn't give before the
// division back down).
func (a Amount) AsBig() *big.Int {
	return a.v.ToBig()
}

// AmountFromBig converts a non-negative *big.Int back to an Amount,
// erroring if it exceeds 128 bits.
func AmountFromBig(v *big.Int) (Amount, error) {
	if v.Sign() < 0 {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	var u uint256.Int
	if overflow := u.SetFromBig(v); overflow {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	if u.Gt(max128) {
		return Amount{}, defuseerr.ErrBalanceOverflow
	}
	return Amount{v: u}, nil
}

func (a Amount) String() string { return a.v.Dec() }

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v.Dec())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("%w: amount %q: %s", defuseerr.ErrJSON, s, err)
	}
	if v.Gt(max128) {
		return fmt.Errorf("%w: amount %q exceeds 128 bits", defuseerr.ErrBalanceOverflow, s)
	}
	a.v = *v
	return nil
}
