package signing

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	solana "github.com/gagliardetto/solana-go"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

func encodeBase58(raw string) string {
	return base58.Encode([]byte(raw))
}

// ParsePublicKey decodes the curve-tagged "<curve>:<base58(bytes)>" wire
// encoding. Bare base58 with no curve prefix defaults to Ed25519,
// matching NEAR's own implicit-account convention.
func ParsePublicKey(s string) (PublicKey, error) {
	tag, rest, ok := strings.Cut(s, ":")
	curve := Tag(tag)
	if !ok {
		curve, rest = TagEd25519, s
	}
	raw, err := base58.Decode(rest)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", defuseerr.ErrKeyEncoding, err)
	}

	if _, err := curveByTag(curve); err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", defuseerr.ErrUnknownCurve, curve)
	}

	switch curve {
	case TagEd25519:
		if len(raw) != 32 {
			return PublicKey{}, fmt.Errorf("%w: ed25519 key must be 32 bytes", defuseerr.ErrKeyEncoding)
		}
		// Round-trip through solana-go's address type: Solana and NEAR
		// implicit accounts share the same Ed25519-base58 convention,
		// and solana.PublicKey is the pack's canonical representation
		// of it.
		pk := solana.PublicKeyFromBytes(raw)
		return PublicKey{Curve: TagEd25519, Bytes: string(pk.Bytes())}, nil
	case TagSecp256k1:
		if len(raw) != 64 {
			return PublicKey{}, fmt.Errorf("%w: secp256k1 key must be 64 bytes", defuseerr.ErrKeyEncoding)
		}
	case TagP256:
		if len(raw) != 64 {
			return PublicKey{}, fmt.Errorf("%w: p256 key must be 64 bytes", defuseerr.ErrKeyEncoding)
		}
	}
	return PublicKey{Curve: curve, Bytes: string(raw)}, nil
}
