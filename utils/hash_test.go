package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMethods(t *testing.T) {
	assert.Equal(t, []string{"blake2b-256", "blake3", "sha-1", "sha-256", "sha-512", "sha3-256"}, HashMethods())
}

func TestHexDigest(t *testing.T) {
	digest, err := HexDigest("sha-1")
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", digest([]byte("abc")))

	_, err = HexDigest("md5")
	assert.EqualError(t, err, "unsupported hash method: md5")
	assert.True(t, errors.Is(err, ErrUnsupportedHashMethod))
}

// every hash usable as a digest is usable for hmac
func TestHmacHashMethods(t *testing.T) {
	for _, method := range HashMethods() {
		s, err := HmacEncode(method, []byte("secret"), []byte("abcdef"), "hex")
		require.NoError(t, err, method)
		assert.NotEmpty(t, s, method)

		other, err := HmacEncode(method, []byte("other"), []byte("abcdef"), "hex")
		require.NoError(t, err, method)
		assert.NotEqual(t, s, other, method)
	}
}
