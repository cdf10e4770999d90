package license

import (
	"errors"
	"fmt"
	"strings"
)

// MinKeyLength is the shortest text accepted as a license key.
const MinKeyLength = 16

var (
	ErrInvalidFormat    = errors.New("invalid license key format")
	ErrChecksumMismatch = errors.New("license key checksum mismatch")
	ErrKeyMismatch      = errors.New("license key does not match")
)

// Key is the decomposition of a license key:
//
//	[prefix:]seed-subkey-...-subkey-checksum
//
// Seed, every subkey and the checksum are hex groups of GroupSize characters.
type Key struct {
	Prefix    string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Prefixed  bool     `json:"prefixed" yaml:"prefixed"`
	Seed      string   `json:"seed" yaml:"seed"`
	Subkeys   []string `json:"subkeys" yaml:"subkeys"`
	Checksum  string   `json:"checksum" yaml:"checksum"`
	GroupSize int      `json:"group_size" yaml:"group_size"`

	raw      string
	lastDash int
}

func formatError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, reason)
}

// Parse splits raw into its groups. The text is taken as is: no trimming and
// no case folding.
func Parse(raw string) (*Key, error) {
	if len(raw) < MinKeyLength {
		return nil, formatError(fmt.Sprintf("shorter than %d characters", MinKeyLength))
	}

	lastDash := strings.LastIndexByte(raw, '-')
	if lastDash == -1 {
		return nil, formatError("missing checksum separator")
	}
	if raw[0] == '-' || raw[len(raw)-1] == '-' {
		return nil, formatError("leading or trailing dash")
	}

	key := &Key{raw: raw, lastDash: lastDash}

	payload := raw
	if prefix, rest, found := strings.Cut(raw, ":"); found {
		if strings.Contains(rest, ":") {
			return nil, formatError("prefix must not contain ':'")
		}
		key.Prefix = prefix
		key.Prefixed = true
		payload = rest
	}

	groups := strings.Split(payload, "-")
	groupSize := len(groups[0])
	for _, group := range groups {
		if len(group) != groupSize {
			return nil, formatError("groups differ in length")
		}
	}
	if groupSize == 0 {
		return nil, formatError("empty group")
	}
	// seed, at least one subkey and the checksum
	if len(groups) < 3 {
		return nil, formatError("no subkey groups")
	}

	key.GroupSize = groupSize
	key.Seed = groups[0]
	key.Subkeys = groups[1 : len(groups)-1]
	key.Checksum = groups[len(groups)-1]
	return key, nil
}

// Body returns the checksummed part of the key, including the dash that
// precedes the checksum.
func (k *Key) Body() string {
	return k.raw[:k.lastDash+1]
}

func (k *Key) String() string {
	return k.raw
}
