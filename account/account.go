package account

import (
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
	"github.com/defuse-protocol/defuse-core/token"
)

// Account is the per-signer state: the authorized key set, the
// sparse used-nonce bitmap, and the token balance map. An account
// with zero keys cannot originate intents but may still hold
// balances and receive transfers.
type Account struct {
	keys     map[signing.PublicKey]struct{}
	nonces   *nonceSet
	balances map[token.ID]token.Amount
}

func newAccount() *Account {
	return &Account{
		keys:     make(map[signing.PublicKey]struct{}),
		nonces:   newNonceSet(),
		balances: make(map[token.ID]token.Amount),
	}
}

func (a *Account) hasPublicKey(k signing.PublicKey) bool {
	_, ok := a.keys[k]
	return ok
}

func (a *Account) publicKeys() []signing.PublicKey {
	out := make([]signing.PublicKey, 0, len(a.keys))
	for k := range a.keys {
		out = append(out, k)
	}
	return out
}

// addPublicKey returns true iff the key was newly added.
func (a *Account) addPublicKey(k signing.PublicKey) bool {
	if _, ok := a.keys[k]; ok {
		return false
	}
	a.keys[k] = struct{}{}
	return true
}

func (a *Account) removePublicKey(k signing.PublicKey) bool {
	if _, ok := a.keys[k]; !ok {
		return false
	}
	delete(a.keys, k)
	return true
}

func (a *Account) balanceOf(t token.ID) token.Amount {
	return a.balances[t]
}

// deposit credits amount of t to the account, erasing any zero-value
// entry on withdrawal but never storing one here.
func (a *Account) deposit(t token.ID, amount token.Amount) error {
	sum, err := a.balances[t].Add(amount)
	if err != nil {
		return err
	}
	if sum.IsZero() {
		return nil
	}
	a.balances[t] = sum
	return nil
}

func (a *Account) withdraw(t token.ID, amount token.Amount) error {
	cur := a.balances[t]
	diff, err := cur.Sub(amount)
	if err != nil {
		return defuseerr.ErrBalanceOverflow
	}
	if diff.IsZero() {
		delete(a.balances, t)
	} else {
		a.balances[t] = diff
	}
	return nil
}

func (a *Account) clone() *Account {
	out := &Account{
		keys:     make(map[signing.PublicKey]struct{}, len(a.keys)),
		nonces:   a.nonces.clone(),
		balances: make(map[token.ID]token.Amount, len(a.balances)),
	}
	for k := range a.keys {
		out.keys[k] = struct{}{}
	}
	for t, v := range a.balances {
		out.balances[t] = v
	}
	return out
}
