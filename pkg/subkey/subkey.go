// Package subkey builds subkey algorithms from declarative definitions, so a
// key generator can carry the complete set while each application release
// is configured with the few it checks.
package subkey

import (
	"errors"
	"fmt"
	"slices"

	"github.com/creasty/defaults"
	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/utils"
	"github.com/mitchellh/mapstructure"
)

type Type string

const (
	TypeWrap    Type = "wrap"
	TypeReverse Type = "reverse"
	TypeHmac    Type = "hmac"
	TypeDigest  Type = "digest"
)

var (
	ErrUnknownType       = errors.New("unknown algorithm type")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
	ErrDuplicateName     = errors.New("duplicate algorithm name")
	ErrInvalidDefinition = errors.New("invalid algorithm definition")
)

func errInvalidDefinition(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidDefinition, s)
}

// Definition describes one subkey algorithm.
type Definition struct {
	Name    string                 `yaml:"name" json:"name" validate:"required"`
	Type    Type                   `yaml:"type" json:"type" validate:"required"`
	Options map[string]interface{} `yaml:"options" json:"options,omitempty"`
}

// Algorithm is a built algorithm that remembers its definition name.
type Algorithm struct {
	license.Algorithm
	Name string
}

type factory func(options map[string]interface{}) (license.Algorithm, error)

var registry = map[Type]factory{}

func register(t Type, fn factory) {
	registry[t] = fn
}

// Types lists the registered algorithm types.
func Types() []Type {
	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

func decodeOptions(options map[string]interface{}, v interface{}) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(options); err != nil {
		return err
	}
	return utils.Validate(v)
}

// Build creates the algorithm a definition describes.
func Build(def Definition) (*Algorithm, error) {
	if err := utils.Validate(&def); err != nil {
		return nil, err
	}
	fn, exist := registry[def.Type]
	if !exist {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, def.Type)
	}
	algorithm, err := fn(def.Options)
	if err != nil {
		return nil, fmt.Errorf("algorithm %q: %w", def.Name, err)
	}
	return &Algorithm{Algorithm: algorithm, Name: def.Name}, nil
}

// Set is an ordered collection of named algorithms.
type Set struct {
	algorithms []*Algorithm
	index      map[string]*Algorithm
}

// NewSet builds every definition, keeping their order.
func NewSet(defs []Definition) (*Set, error) {
	set := &Set{index: make(map[string]*Algorithm, len(defs))}
	for _, def := range defs {
		if _, exist := set.index[def.Name]; exist {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}
		algorithm, err := Build(def)
		if err != nil {
			return nil, err
		}
		set.algorithms = append(set.algorithms, algorithm)
		set.index[def.Name] = algorithm
	}
	return set, nil
}

func (s *Set) Get(name string) (*Algorithm, bool) {
	algorithm, ok := s.index[name]
	return algorithm, ok
}

func (s *Set) Names() []string {
	names := make([]string, 0, len(s.algorithms))
	for _, algorithm := range s.algorithms {
		names = append(names, algorithm.Name)
	}
	return names
}

// Select returns the named algorithms in the order asked for. No names
// selects the whole set.
func (s *Set) Select(names ...string) ([]*Algorithm, error) {
	if len(names) == 0 {
		return slices.Clone(s.algorithms), nil
	}
	selected := make([]*Algorithm, 0, len(names))
	for _, name := range names {
		algorithm, ok := s.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
		}
		selected = append(selected, algorithm)
	}
	return selected, nil
}

// Unwrap converts named algorithms for license.Scheme.Generate.
func Unwrap(algorithms []*Algorithm) []license.Algorithm {
	list := make([]license.Algorithm, len(algorithms))
	for i, algorithm := range algorithms {
		list[i] = algorithm
	}
	return list
}
