// Package wire validates an incoming batch's envelope shape before it
// is handed to the JSON decoder, the same defense-in-depth role
// gojsonschema plays validating structured request bodies elsewhere
// in the stack.
package wire

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

// batchSchema only checks the outer shape every MultiPayload must
// have — it never validates intent-specific fields, which the
// variant-specific struct tags already reject on mismatch.
const batchSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["standard", "payload", "signature"],
    "properties": {
      "standard": {"type": "string", "enum": ["nep413", "erc191", "raw_ed25519", "webauthn", "solana"]},
      "signature": {"type": "string"},
      "public_key": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(batchSchema)

// ValidateBatch checks the envelope-level shape of a raw JSON batch
// before it reaches the MultiPayload decoder.
func ValidateBatch(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %s", defuseerr.ErrJSON, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: batch schema: %v", defuseerr.ErrJSON, msgs)
	}
	return nil
}
