package signing

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
)

type secp256k1Curve struct{}

func (secp256k1Curve) Tag() Tag { return TagSecp256k1 }

// Verify recovers the 64-byte uncompressed public key from a 65-byte
// r‖s‖v recoverable ECDSA signature over a 32-byte prehash. The
// caller-supplied vk is ignored: recovery is the whole point of this
// scheme. High-s signatures are rejected outright to block the
// classic ECDSA signature-malleability attack.
func (secp256k1Curve) Verify(sig, msg, _ []byte) (PublicKey, bool) {
	if len(sig) != 65 || len(msg) != 32 {
		return PublicKey{}, false
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		return PublicKey{}, false
	}
	if s.IsOverHalfOrder() {
		return PublicKey{}, false
	}

	pub, err := crypto.Ecrecover(msg, sig)
	if err != nil {
		return PublicKey{}, false
	}
	// crypto.Ecrecover returns the uncompressed point with its leading
	// 0x04 tag; the wire format carries the bare x‖y.
	if len(pub) != 65 || pub[0] != 0x04 {
		return PublicKey{}, false
	}
	return PublicKey{Curve: TagSecp256k1, Bytes: string(pub[1:])}, true
}
