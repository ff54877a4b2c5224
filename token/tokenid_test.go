package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIDRoundTrip(t *testing.T) {
	cases := []ID{
		NewNative("ft1.near"),
		NewNonFungible("nft.near", "token-1"),
		NewMulti("factory.near", "token:with:colons"),
	}
	for _, id := range cases {
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestTokenIDParseErrors(t *testing.T) {
	_, err := Parse("no-colon-here")
	assert.Error(t, err)

	_, err = Parse("nep141:")
	assert.Error(t, err)

	_, err = Parse("nep171:onlyaccount")
	assert.Error(t, err)

	_, err = Parse("unknownkind:foo")
	assert.Error(t, err)
}

func TestTokenIDJSONMapKey(t *testing.T) {
	m := map[ID]int{
		NewNative("ft1.near"): 1,
	}
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nep141:ft1.near":1}`, string(raw))

	var back map[ID]int
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, 1, back[NewNative("ft1.near")])
}
