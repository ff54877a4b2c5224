package intent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/token"
)

func TestListRoundTripMixedVariants(t *testing.T) {
	qid := uint64(7)
	list := List{
		Transfer{
			Receiver: "user2.near",
			Tokens: map[token.ID]token.Amount{
				token.NewNative("ft1.near"): token.AmountFromUint64(100),
			},
		},
		TokenDiff{
			Deltas: map[token.ID]token.Delta{
				token.NewNative("ft1.near"): token.DeltaFromInt64(-1000),
				token.NewNative("ft2.near"): token.DeltaFromInt64(2000),
			},
			QueryID: &qid,
		},
		NativeWithdraw{Receiver: "user1.near", Amount: token.AmountFromUint64(100)},
	}

	raw, err := json.Marshal(list)
	require.NoError(t, err)

	var back List
	require.NoError(t, json.Unmarshal(raw, &back))

	require.Len(t, back, 3)
	assert.Equal(t, KindTransfer, back[0].Kind())
	assert.Equal(t, KindTokenDiff, back[1].Kind())
	assert.Equal(t, KindNativeWithdraw, back[2].Kind())

	td, ok := back[1].(TokenDiff)
	require.True(t, ok)
	require.NotNil(t, td.QueryID)
	assert.Equal(t, qid, *td.QueryID)
}

func TestListUnmarshalUnknownKindFails(t *testing.T) {
	var list List
	err := json.Unmarshal([]byte(`[{"intent":"not_a_real_kind"}]`), &list)
	assert.Error(t, err)
}

func TestListMarshalDiscriminatorPresent(t *testing.T) {
	raw, err := json.Marshal(List{AddPublicKey{}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"intent":"add_public_key"`)
}
