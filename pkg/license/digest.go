package license

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/liblicense/liblicense/utils"
)

var ErrUnsupportedDigest = errors.New("unsupported digest")

// Digest hashes data and renders the full digest as lowercase hex.
type Digest func(data []byte) string

const DefaultDigest = "sha-1"

// SHA1 is the default digest. Keys issued by the C++ and Java liblicense
// libraries use it.
func SHA1(data []byte) string {
	h := sha1.Sum(data)
	return hex.EncodeToString(h[:])
}

// NewDigest returns the named digest.
func NewDigest(method string) (Digest, error) {
	fn, err := utils.HexDigest(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDigest, method)
	}
	return fn, nil
}

// Digests lists the supported digest names.
func Digests() []string {
	return utils.HashMethods()
}

// Truncate returns the first g characters of s. A g larger than s yields s.
func Truncate(s string, g int) string {
	if g < 0 {
		g = 0
	}
	if g > len(s) {
		return s
	}
	return s[:g]
}
