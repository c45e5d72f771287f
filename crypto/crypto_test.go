package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDeterministic(t *testing.T) {
	nonce := Nonce{0x01}
	key := DefaultSharedKey

	d1, err := Hash(nonce, key)
	require.NoError(t, err)

	d2, err := Hash(nonce, key)
	require.NoError(t, err)

	assert.Equal(t, d1, d2, "Hash must be deterministic for the same inputs")
	assert.NotEqual(t, [32]byte{}, d1, "Hash must not be the zero digest")
}

func TestHashDiffersOnKey(t *testing.T) {
	nonce := Nonce{0x02}
	key1 := DefaultSharedKey
	key2 := DefaultSharedKey
	key2[31] ^= 0xFF

	d1, err := Hash(nonce, key1)
	require.NoError(t, err)
	d2, err := Hash(nonce, key2)
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2, "different keys must produce different digests")
}

func TestNewNonceFreshness(t *testing.T) {
	seen := make(map[Nonce]bool)
	for i := 0; i < 64; i++ {
		n, err := NewNonce()
		require.NoError(t, err)
		assert.False(t, seen[n], "nonce collision observed across %d draws", i)
		seen[n] = true
	}
}

func TestEqual(t *testing.T) {
	a := [32]byte{1, 2, 3}
	b := [32]byte{1, 2, 3}
	c := [32]byte{1, 2, 4}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestSharedKeyIsZero(t *testing.T) {
	var zero SharedKey
	assert.True(t, zero.IsZero())
	assert.False(t, DefaultSharedKey.IsZero())
}
