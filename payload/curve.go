package payload

import (
	"github.com/defuse-protocol/defuse-core/defuseerr"
	"github.com/defuse-protocol/defuse-core/signing"
)

func curveFor(tag signing.Tag) (signing.Curve, error) {
	switch tag {
	case signing.TagEd25519:
		return signing.Ed25519, nil
	case signing.TagSecp256k1:
		return signing.Secp256k1, nil
	case signing.TagP256:
		return signing.P256, nil
	default:
		return nil, defuseerr.ErrUnknownCurve
	}
}
