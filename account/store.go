package account

import (
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
	"github.com/defuse-protocol/defuse-core/token"
)

// Store is the in-memory account table. It is not safe for
// concurrent use: the engine holds exclusive access to one Store for
// the duration of a batch, a single-threaded, non-suspending
// contract that keeps the clone-and-adopt staging strategy below
// correct without locking.
type Store struct {
	accounts map[string]*Account
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]*Account)}
}

// lookup returns the account, lazily creating it with an empty key
// set if absent — a recipient-only account needs no prior
// registration.
func (s *Store) lookup(id string) *Account {
	a, ok := s.accounts[id]
	if !ok {
		a = newAccount()
		s.accounts[id] = a
	}
	return a
}

func (s *Store) HasPublicKey(id string, k signing.PublicKey) bool {
	a, ok := s.accounts[id]
	if !ok {
		return false
	}
	return a.hasPublicKey(k)
}

func (s *Store) PublicKeysOf(id string) []signing.PublicKey {
	a, ok := s.accounts[id]
	if !ok {
		return nil
	}
	return a.publicKeys()
}

// AddPublicKey returns true iff the key was newly added.
func (s *Store) AddPublicKey(id string, k signing.PublicKey) bool {
	return s.lookup(id).addPublicKey(k)
}

func (s *Store) RemovePublicKey(id string, k signing.PublicKey) bool {
	a, ok := s.accounts[id]
	if !ok {
		return false
	}
	return a.removePublicKey(k)
}

func (s *Store) IsNonceUsed(id string, n Nonce) bool {
	a, ok := s.accounts[id]
	if !ok {
		return false
	}
	return a.nonces.isUsed(n)
}

// CommitNonce returns true iff n was not already used for id.
func (s *Store) CommitNonce(id string, n Nonce) bool {
	return s.lookup(id).nonces.commit(n)
}

func (s *Store) BalanceOf(id string, t token.ID) token.Amount {
	a, ok := s.accounts[id]
	if !ok {
		return token.Amount{}
	}
	return a.balanceOf(t)
}

func (s *Store) Deposit(id string, t token.ID, amount token.Amount) error {
	return s.lookup(id).deposit(t, amount)
}

func (s *Store) Withdraw(id string, t token.ID, amount token.Amount) error {
	a, ok := s.accounts[id]
	if !ok {
		return defuseerr.ErrBalanceOverflow
	}
	return a.withdraw(t, amount)
}

// Clone deep-copies the whole table. The engine clones before running
// a batch and either discards the clone (on abort, leaving the
// original untouched) or swaps it in (on success) — a scratch-layer
// staging strategy that needs no undo log.
func (s *Store) Clone() *Store {
	out := NewStore()
	for id, a := range s.accounts {
		out.accounts[id] = a.clone()
	}
	return out
}

// Adopt replaces this store's contents with other's, used by the
// engine to commit a successful batch's scratch clone back onto the
// caller's live Store in place.
func (s *Store) Adopt(other *Store) {
	s.accounts = other.accounts
}
