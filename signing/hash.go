package signing

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// SHA256 returns the plain SHA-256 digest used by the NEP-413, raw
// Ed25519, and WebAuthn payload standards.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Keccak256 returns the Keccak-256 digest (distinct from SHA3-256)
// used throughout the ERC-191 path.
func Keccak256(data []byte) [32]byte {
	return [32]byte(crypto.Keccak256Hash(data))
}

// Keccak512 is exposed for callers building on go-ethereum's
// HMAC-over-keccak key derivation paths; no payload standard here
// consumes it directly.
func Keccak512(data []byte) []byte {
	return crypto.Keccak512(data)
}

// ERC191Hash computes the "\x19Ethereum Signed Message:\n" prefixed
// keccak256 digest of data. go-ethereum's accounts.TextHash is the
// canonical implementation; reimplementing the ascii-length prefix by
// hand would only reintroduce the exact bug class this library exists
// to avoid.
func ERC191Hash(data []byte) [32]byte {
	return [32]byte(accounts.TextHash(data))
}
