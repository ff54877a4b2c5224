package signing

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"
)

type p256Curve struct{}

func (p256Curve) Tag() Tag { return TagP256 }

// Verify checks a 64-byte r‖s ECDSA signature over a 32-byte prehash
// against the 64-byte untagged x‖y verifying key vk. High-s signatures
// are rejected, mirroring the Secp256k1 path.
func (p256Curve) Verify(sig, msg, vk []byte) (PublicKey, bool) {
	if len(sig) != 64 || len(vk) != 64 || len(msg) != 32 {
		return PublicKey{}, false
	}
	curve := elliptic.P256()
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])

	halfOrder := new(big.Int).Rsh(curve.Params().N, 1)
	if s.Cmp(halfOrder) > 0 {
		return PublicKey{}, false
	}

	x := new(big.Int).SetBytes(vk[:32])
	y := new(big.Int).SetBytes(vk[32:])
	if !curve.IsOnCurve(x, y) {
		return PublicKey{}, false
	}

	pub := &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
	if !ecdsa.Verify(pub, msg, r, s) {
		return PublicKey{}, false
	}
	return PublicKey{Curve: TagP256, Bytes: string(vk)}, true
}
