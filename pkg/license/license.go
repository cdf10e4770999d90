// Package license implements partial license key verification.
//
// A key is an optional prefix (typically license holder information)
// followed by dash separated hex groups of equal size:
//
//	name@thecompany.com:a808ef-726024-3ee23c-e15fbe-3488da
//	|_________________| |____| |___________| |____|
//	      prefix         seed     subkeys    checksum
//
// The seed is the truncated digest of the prefix. Each subkey is the truncated
// digest of a subkey algorithm applied to the seed, and the checksum is the
// truncated digest of everything before it, prefix included. An application
// release only embeds one or a few of the algorithms used at generation time
// and verifies the key against those, so reverse engineering one release does
// not reveal the key generator.
package license

import (
	"crypto/subtle"
	"strings"
)

// Verification is the outcome of verifying a key against one algorithm. The
// zero value is not an outcome and reports as a format failure.
type Verification int

const (
	Success Verification = iota + 1
	FormatFailure
	ChecksumFailure
	KeyMatchFailure
)

var verificationNames = map[Verification]string{
	Success:         "success",
	FormatFailure:   "format_failure",
	ChecksumFailure: "checksum_failure",
	KeyMatchFailure: "key_match_failure",
}

func (v Verification) String() string {
	if name, ok := verificationNames[v]; ok {
		return name
	}
	return "unknown"
}

func (v Verification) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Err returns nil for Success and the matching sentinel error otherwise.
func (v Verification) Err() error {
	switch v {
	case Success:
		return nil
	case ChecksumFailure:
		return ErrChecksumMismatch
	case KeyMatchFailure:
		return ErrKeyMismatch
	default:
		return ErrInvalidFormat
	}
}

// Scheme generates and verifies keys. It holds no mutable state and is safe
// for concurrent use.
type Scheme struct {
	digest Digest
}

type Option func(*Scheme)

func WithDigest(digest Digest) Option {
	return func(s *Scheme) {
		s.digest = digest
	}
}

// New returns a Scheme using SHA1 unless another digest is given.
func New(opts ...Option) *Scheme {
	s := &Scheme{digest: SHA1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheme) hash(data string, g int) string {
	return Truncate(s.digest([]byte(data)), g)
}

// Seed derives the seed group from a prefix.
func (s *Scheme) Seed(prefix string, groupSize int) string {
	return s.hash(prefix, groupSize)
}

// Subkey derives the subkey group an algorithm produces for seed.
func (s *Scheme) Subkey(seed string, algorithm Algorithm, groupSize int) string {
	return s.hash(algorithm.Transform(seed), groupSize)
}

// Checksum derives the checksum group of a key body.
func (s *Scheme) Checksum(body string, groupSize int) string {
	return s.hash(body, groupSize)
}

// Generate builds a key for prefix with one subkey per algorithm, in the
// given order. The prefix is embedded in the key when prefixed is true.
//
// Inputs are trusted: the caller picks a prefix and group size that yield a
// key of at least MinKeyLength characters.
func (s *Scheme) Generate(prefix string, prefixed bool, groupSize int, algorithms ...Algorithm) string {
	seed := s.Seed(prefix, groupSize)

	var b strings.Builder
	if prefixed {
		b.WriteString(prefix)
		b.WriteByte(':')
	}
	b.WriteString(seed)
	b.WriteByte('-')
	for _, algorithm := range algorithms {
		b.WriteString(s.Subkey(seed, algorithm, groupSize))
		b.WriteByte('-')
	}

	body := b.String()
	return body + s.Checksum(body, groupSize)
}

// VerifyChecksum parses text and checks its checksum without looking at the
// subkeys. The key is returned when parsing succeeded.
func (s *Scheme) VerifyChecksum(text string) (*Key, Verification) {
	key, err := Parse(text)
	if err != nil {
		return nil, FormatFailure
	}
	if !equal(s.Checksum(key.Body(), key.GroupSize), key.Checksum) {
		return key, ChecksumFailure
	}
	return key, Success
}

// Verify checks the format and checksum of text, then whether any of its
// subkeys was produced by algorithm. Subkey position is irrelevant.
func (s *Scheme) Verify(text string, algorithm Algorithm) Verification {
	key, result := s.VerifyChecksum(text)
	if result != Success {
		return result
	}
	if !s.Match(key, algorithm) {
		return KeyMatchFailure
	}
	return Success
}

// Match reports whether algorithm produced one of the subkeys of key. It does
// not check the checksum.
func (s *Scheme) Match(key *Key, algorithm Algorithm) bool {
	candidate := s.Subkey(key.Seed, algorithm, key.GroupSize)
	for _, subkey := range key.Subkeys {
		if equal(candidate, subkey) {
			return true
		}
	}
	return false
}

// BelongsTo reports whether the seed of key was derived from prefix. This
// works for keys issued without the prefix embedded.
func (s *Scheme) BelongsTo(key *Key, prefix string) bool {
	return equal(s.Seed(prefix, key.GroupSize), key.Seed)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
