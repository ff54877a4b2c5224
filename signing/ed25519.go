package signing

import (
	stded25519 "crypto/ed25519"
)

type ed25519Curve struct{}

func (ed25519Curve) Tag() Tag { return TagEd25519 }

// Verify checks a 64-byte Ed25519 signature over msg against the
// 32-byte verifying key vk. Ed25519 cannot recover a key from a
// signature, so vk must be supplied by the caller — the account's
// on-file key.
func (ed25519Curve) Verify(sig, msg, vk []byte) (PublicKey, bool) {
	if len(sig) != stded25519.SignatureSize || len(vk) != stded25519.PublicKeySize {
		return PublicKey{}, false
	}
	if !stded25519.Verify(stded25519.PublicKey(vk), msg, sig) {
		return PublicKey{}, false
	}
	return PublicKey{Curve: TagEd25519, Bytes: string(vk)}, true
}
