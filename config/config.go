package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/creasty/defaults"
	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/pkg/licenser"
	"github.com/liblicense/liblicense/pkg/subkey"
	"github.com/liblicense/liblicense/utils"
)

// algorithms checked by the demo application
var builtinActive = []string{"underscore", "v1.0.5"}

type VerifyConfig struct {
	Active []string        `yaml:"active" json:"active" envconfig:"ACTIVE"`
	Policy licenser.Policy `yaml:"policy" json:"policy" envconfig:"POLICY" default:"all" validate:"oneof=all any"`
}

// Config Configuration
type Config struct {
	Log        LogConfig           `yaml:"log" json:"log" envconfig:"LOG"`
	Hash       string              `yaml:"hash" json:"hash" envconfig:"HASH" default:"sha-1"`
	GroupSize  int                 `yaml:"group_size" json:"group_size" envconfig:"GROUP_SIZE" default:"6" validate:"gte=3,lte=128"`
	Prefixed   bool                `yaml:"prefixed" json:"prefixed" envconfig:"PREFIXED" default:"true"`
	Algorithms []subkey.Definition `yaml:"algorithms" json:"algorithms" ignored:"true"`
	Aliases    map[string][]string `yaml:"aliases" json:"aliases,omitempty" ignored:"true"`
	Verify     VerifyConfig        `yaml:"verify" json:"verify" envconfig:"VERIFY"`
}

func (cfg Config) String() string {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	if err := utils.Validate(&cfg); err != nil {
		return err
	}
	digest, err := cfg.Digest()
	if err != nil {
		return fmt.Errorf("invalid hash: %s", cfg.Hash)
	}
	if n := len(digest(nil)); cfg.GroupSize > n {
		return fmt.Errorf("invalid group_size: %d exceeds the %d hex characters of %s", cfg.GroupSize, n, cfg.Hash)
	}
	set, err := cfg.AlgorithmSet()
	if err != nil {
		return err
	}
	if _, err := cfg.ActiveAlgorithms(set); err != nil && !errors.Is(err, licenser.ErrNoActiveAlgorithms) {
		return err
	}
	return nil
}

// Digest returns the configured digest function.
func (cfg Config) Digest() (license.Digest, error) {
	return license.NewDigest(cfg.Hash)
}

// Scheme returns a license scheme using the configured digest.
func (cfg Config) Scheme() (*license.Scheme, error) {
	digest, err := cfg.Digest()
	if err != nil {
		return nil, err
	}
	return license.New(license.WithDigest(digest)), nil
}

// AlgorithmSet builds the configured algorithms, or the built-in set when
// none are configured.
func (cfg Config) AlgorithmSet() (*subkey.Set, error) {
	if len(cfg.Algorithms) == 0 {
		return subkey.NewSet(subkey.Builtin())
	}
	return subkey.NewSet(cfg.Algorithms)
}

// AddAlgorithms appends defs to the configured algorithms. When none were
// configured the built-in set and its active algorithms are kept as the base.
func (cfg *Config) AddAlgorithms(defs ...subkey.Definition) {
	if len(defs) == 0 {
		return
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = subkey.Builtin()
		if len(cfg.Verify.Active) == 0 {
			cfg.Verify.Active = slices.Clone(builtinActive)
		}
	}
	cfg.Algorithms = append(cfg.Algorithms, defs...)
}

// ResolveNames expands aliases in names.
func (cfg Config) ResolveNames(names []string) ([]string, error) {
	return utils.ResolveAlias(cfg.Aliases, names)
}

// ActiveAlgorithms returns the algorithms verification checks, in order.
func (cfg Config) ActiveAlgorithms(set *subkey.Set) ([]*subkey.Algorithm, error) {
	names := cfg.Verify.Active
	if len(names) == 0 && len(cfg.Algorithms) == 0 {
		names = builtinActive
	}
	names, err := cfg.ResolveNames(names)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, licenser.ErrNoActiveAlgorithms
	}
	return set.Select(names...)
}

// Licenser returns a licenser checking the active algorithms with the
// configured policy.
func (cfg Config) Licenser(opts ...licenser.Option) (*licenser.DefaultLicenser, error) {
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, err
	}
	set, err := cfg.AlgorithmSet()
	if err != nil {
		return nil, err
	}
	active, err := cfg.ActiveAlgorithms(set)
	if err != nil {
		return nil, err
	}
	opts = append([]licenser.Option{licenser.WithPolicy(cfg.Verify.Policy)}, opts...)
	return licenser.NewLicenser(scheme, active, opts...)
}

func New() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}
