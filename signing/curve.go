// Package signing implements the curve-tagged signature verification
// primitives every payload standard builds on, plus the hash helpers
// those standards need to compute their canonical digest.
package signing

import (
	"encoding/json"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

// Tag names the curve a key or signature belongs to, and doubles as the
// wire prefix of the "<curve>:<base58(bytes)>" encoding.
type Tag string

const (
	TagEd25519   Tag = "ed25519"
	TagSecp256k1 Tag = "secp256k1"
	TagP256      Tag = "p256"
)

// PublicKey is the curve-tagged verifying key used throughout the
// account and payload packages. Bytes is a string (not []byte) so that
// PublicKey remains comparable and can key an account's key set.
type PublicKey struct {
	Curve Tag
	Bytes string
}

func (k PublicKey) String() string {
	return string(k.Curve) + ":" + encodeBase58(k.Bytes)
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Curve verifies a signature of a fixed wire shape against a message
// hash, returning the recovered or confirmed public key on success.
// vk is the expected verifying key for curves that cannot recover one
// (Ed25519, P-256); Secp256k1 ignores it because it recovers the key
// from the signature itself.
type Curve interface {
	Tag() Tag
	Verify(sig, msg, vk []byte) (PublicKey, bool)
}

var (
	Ed25519   Curve = ed25519Curve{}
	Secp256k1 Curve = secp256k1Curve{}
	P256      Curve = p256Curve{}
)

func curveByTag(t Tag) (Curve, error) {
	switch t {
	case TagEd25519:
		return Ed25519, nil
	case TagSecp256k1:
		return Secp256k1, nil
	case TagP256:
		return P256, nil
	default:
		return nil, defuseerr.ErrUnknownCurve
	}
}
