package account

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var errShortNonce = errors.New("nonce must decode to exactly 32 bytes")

// Nonce is the opaque 256-bit big-endian replay-protection value
// carried by every payload envelope. Its wire form is base64url,
// padded, matching the envelope's nonce field.
type Nonce [32]byte

func (n Nonce) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.URLEncoding.EncodeToString(n[:]))
}

func (n *Nonce) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	if len(raw) != 32 {
		return errShortNonce
	}
	copy(n[:], raw)
	return nil
}

// wordKey is the 248-bit word index: the nonce's leading 31 bytes.
// The trailing byte selects one of the 256 bits inside that word's
// mask.
type wordKey [31]byte

func (n Nonce) split() (wordKey, uint) {
	var w wordKey
	copy(w[:], n[:31])
	return w, uint(n[31])
}

// nonceSet is the sparse per-account bitmap: only words that have
// ever had a bit committed are allocated, each sized exactly to the
// 256 intra-word positions.
type nonceSet struct {
	words map[wordKey]*bitset.BitSet
}

func newNonceSet() *nonceSet {
	return &nonceSet{words: make(map[wordKey]*bitset.BitSet)}
}

func (s *nonceSet) isUsed(n Nonce) bool {
	w, bit := n.split()
	bs, ok := s.words[w]
	if !ok {
		return false
	}
	return bs.Test(bit)
}

// commit sets the nonce's bit, returning true iff it was not already
// set.
func (s *nonceSet) commit(n Nonce) bool {
	w, bit := n.split()
	bs, ok := s.words[w]
	if !ok {
		bs = bitset.New(256)
		s.words[w] = bs
	}
	if bs.Test(bit) {
		return false
	}
	bs.Set(bit)
	return true
}

// clone deep-copies the bitmap so a batch can be rolled back without
// mutating the committed account state.
func (s *nonceSet) clone() *nonceSet {
	out := newNonceSet()
	for k, bs := range s.words {
		out.words[k] = bs.Clone()
	}
	return out
}
