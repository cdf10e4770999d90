package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/liblicense/liblicense/config"
	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/pkg/subkey"
	"github.com/liblicense/liblicense/utils"
)

var ErrEmptyPrefix = errors.New("prefix is required")

// Record describes an issued license key.
type Record struct {
	ID         string    `json:"id" yaml:"id"`
	Prefix     string    `json:"prefix" yaml:"prefix"`
	Key        string    `json:"key" yaml:"key"`
	Hash       string    `json:"hash" yaml:"hash"`
	GroupSize  int       `json:"group_size" yaml:"group_size"`
	Algorithms []string  `json:"algorithms" yaml:"algorithms"`
	IssuedAt   time.Time `json:"issued_at" yaml:"issued_at"`
}

// issuer generates keys with a fixed set of algorithms. It is safe for
// concurrent use.
type issuer struct {
	scheme     *license.Scheme
	hash       string
	groupSize  int
	prefixed   bool
	algorithms []*subkey.Algorithm
}

// newIssuer uses the named algorithms, or every configured algorithm when
// names is empty.
func newIssuer(cfg *config.Config, names []string) (*issuer, error) {
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, err
	}
	set, err := cfg.AlgorithmSet()
	if err != nil {
		return nil, err
	}
	names, err = cfg.ResolveNames(names)
	if err != nil {
		return nil, err
	}
	algorithms, err := set.Select(names...)
	if err != nil {
		return nil, err
	}
	return &issuer{
		scheme:     scheme,
		hash:       cfg.Hash,
		groupSize:  cfg.GroupSize,
		prefixed:   cfg.Prefixed,
		algorithms: algorithms,
	}, nil
}

func (i *issuer) names() []string {
	names := make([]string, len(i.algorithms))
	for n, algorithm := range i.algorithms {
		names[n] = algorithm.Name
	}
	return names
}

// Issue generates the key of prefix. Line breaks in prefix are encoded.
func (i *issuer) Issue(prefix string) (*Record, error) {
	prefix = license.EncodePrefix(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if i.prefixed && !license.ValidPrefix(prefix) {
		return nil, fmt.Errorf("invalid prefix %q: must not contain ':'", prefix)
	}

	key := i.scheme.Generate(prefix, i.prefixed, i.groupSize, subkey.Unwrap(i.algorithms)...)
	if _, err := license.Parse(key); err != nil {
		// e.g. a small group size with a single algorithm
		return nil, fmt.Errorf("generated key cannot be verified: %w", err)
	}

	return &Record{
		ID:         utils.UUID(),
		Prefix:     prefix,
		Key:        key,
		Hash:       i.hash,
		GroupSize:  i.groupSize,
		Algorithms: i.names(),
		IssuedAt:   time.Now().UTC(),
	}, nil
}
