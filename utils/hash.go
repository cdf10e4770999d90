package utils

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sort"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var ErrUnsupportedHashMethod = errors.New("unsupported hash method")

var hashes = map[string]func() hash.Hash{
	"sha-1":       sha1.New,
	"sha-256":     sha256.New,
	"sha-512":     sha512.New,
	"sha3-256":    sha3.New256,
	"blake2b-256": newBlake2b256,
	"blake3":      newBlake3,
}

func newBlake2b256() hash.Hash {
	// only fails for keys longer than 64 bytes
	h, _ := blake2b.New256(nil)
	return h
}

func newBlake3() hash.Hash {
	return blake3.New()
}

// NewHash returns the constructor of the named hash.
func NewHash(method string) (func() hash.Hash, error) {
	fn, exist := hashes[method]
	if !exist {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHashMethod, method)
	}
	return fn, nil
}

// HashMethods lists the supported hash names, sorted.
func HashMethods() []string {
	names := make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HexDigest returns a function rendering the named hash of its input as
// lowercase hex.
func HexDigest(method string) (func(data []byte) string, error) {
	fn, err := NewHash(method)
	if err != nil {
		return nil, err
	}
	return func(data []byte) string {
		h := fn()
		h.Write(data)
		return hex.EncodeToString(h.Sum(nil))
	}, nil
}
