package intent

import (
	"encoding/json"
	"fmt"

	"github.com/defuse-protocol/defuse-core/defuseerr"
)

// List is a JSON array of tagged-union Intent values, the message
// body of a DefusePayload's "intents" field.
type List []Intent

type peek struct {
	Intent Kind `json:"intent"`
}

func (l List) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, len(l))
	for i, v := range l {
		raw, err := marshalTagged(v)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return json.Marshal(out)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("%w: %s", defuseerr.ErrJSON, err)
	}
	out := make(List, 0, len(raws))
	for _, raw := range raws {
		v, err := decodeOne(raw)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// marshalTagged merges v's own field encoding with its "intent"
// discriminator. v's struct fields carry no json tag for "intent" so
// there is no collision to resolve.
func marshalTagged(v Intent) (json.RawMessage, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	tag, err := json.Marshal(v.Kind())
	if err != nil {
		return nil, err
	}
	fields["intent"] = tag
	return json.Marshal(fields)
}

func decodeOne(raw json.RawMessage) (Intent, error) {
	var p peek
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %s", defuseerr.ErrJSON, err)
	}
	switch p.Intent {
	case KindAddPublicKey:
		var v AddPublicKey
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindRemovePublicKey:
		var v RemovePublicKey
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindInvalidateNonces:
		var v InvalidateNonces
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindTransfer:
		var v Transfer
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindTokenDiff:
		var v TokenDiff
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindFtWithdraw:
		var v FtWithdraw
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindNftWithdraw:
		var v NftWithdraw
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindMtWithdraw:
		var v MtWithdraw
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindNativeWithdraw:
		var v NativeWithdraw
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindMtBatchTransfer:
		var v MtBatchTransfer
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case KindMtBatchTransferCall:
		var v MtBatchTransferCall
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unknown intent %q", defuseerr.ErrInvalidIntent, p.Intent)
	}
}
