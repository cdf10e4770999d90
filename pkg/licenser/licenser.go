// Package licenser applies an application's verification policy on top of
// the license scheme: which algorithms are active in this release and how
// their outcomes combine.
package licenser

import (
	"errors"
	"fmt"

	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/pkg/subkey"
	"go.uber.org/zap"
)

type Policy string

const (
	// PolicyAll requires every active algorithm to match. The first failure
	// is reported.
	PolicyAll Policy = "all"
	// PolicyAny accepts the key as soon as one active algorithm matches.
	PolicyAny Policy = "any"
)

var (
	ErrNoActiveAlgorithms = errors.New("no active algorithms")
	ErrUnknownPolicy      = errors.New("unknown policy")
)

type Licenser interface {
	// Check verifies key against the active algorithms.
	Check(key string) license.Verification
	// CheckChecksum verifies format and checksum only.
	CheckChecksum(key string) license.Verification
	// IssuedTo reports whether key was generated for holder.
	IssuedTo(key string, holder string) bool
}

type DefaultLicenser struct {
	scheme *license.Scheme
	active []*subkey.Algorithm
	policy Policy
	log    *zap.SugaredLogger
}

type Option func(*DefaultLicenser)

func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *DefaultLicenser) {
		l.log = log
	}
}

func WithPolicy(policy Policy) Option {
	return func(l *DefaultLicenser) {
		l.policy = policy
	}
}

func NewLicenser(scheme *license.Scheme, active []*subkey.Algorithm, opts ...Option) (*DefaultLicenser, error) {
	l := &DefaultLicenser{
		scheme: scheme,
		active: active,
		policy: PolicyAll,
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if len(l.active) == 0 {
		return nil, ErrNoActiveAlgorithms
	}
	if l.policy != PolicyAll && l.policy != PolicyAny {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, l.policy)
	}
	return l, nil
}

func (l *DefaultLicenser) CheckChecksum(key string) license.Verification {
	_, result := l.scheme.VerifyChecksum(key)
	return result
}

func (l *DefaultLicenser) Check(key string) license.Verification {
	parsed, result := l.scheme.VerifyChecksum(key)
	if result != license.Success {
		l.log.Debugf("license key rejected: %s", result)
		return result
	}

	for _, algorithm := range l.active {
		matched := l.scheme.Match(parsed, algorithm)
		l.log.Debugw("subkey check", "algorithm", algorithm.Name, "matched", matched)
		switch {
		case matched && l.policy == PolicyAny:
			return license.Success
		case !matched && l.policy == PolicyAll:
			return license.KeyMatchFailure
		}
	}

	if l.policy == PolicyAny {
		return license.KeyMatchFailure
	}
	return license.Success
}

func (l *DefaultLicenser) IssuedTo(key string, holder string) bool {
	parsed, err := license.Parse(key)
	if err != nil {
		return false
	}
	if parsed.Prefixed && parsed.Prefix != holder {
		return false
	}
	return l.scheme.BelongsTo(parsed, holder)
}

// Active returns the names of the active algorithms.
func (l *DefaultLicenser) Active() []string {
	names := make([]string, len(l.active))
	for i, algorithm := range l.active {
		names[i] = algorithm.Name
	}
	return names
}
