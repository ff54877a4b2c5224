package signing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestERC191HashTestVector(t *testing.T) {
	got := ERC191Hash([]byte("Please sign this message to confirm your identity."))
	want := "c21712258067502aad461ea687c066dfebd518e90f5b57d4cc04f5b3eb34f00e"
	assert.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSHA256AndKeccak256Differ(t *testing.T) {
	data := []byte("defuse")
	sha := SHA256(data)
	kec := Keccak256(data)
	assert.NotEqual(t, sha, kec)
}
