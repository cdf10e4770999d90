package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/pkg/licenser"
	"github.com/liblicense/liblicense/pkg/subkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "stderr", cfg.Log.File)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Equal(t, "sha-1", cfg.Hash)
	assert.Equal(t, 6, cfg.GroupSize)
	assert.True(t, cfg.Prefixed)
	assert.Equal(t, licenser.PolicyAll, cfg.Verify.Policy)
	assert.NoError(t, cfg.Validate())

	set, err := cfg.AlgorithmSet()
	require.NoError(t, err)
	assert.Len(t, set.Names(), 7)

	active, err := cfg.ActiveAlgorithms(set)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "underscore", active[0].Name)
	assert.Equal(t, "v1.0.5", active[1].Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		scenario string
		modify   func(cfg *Config)
		error    string
	}{
		{
			scenario: "invalid log level",
			modify:   func(cfg *Config) { cfg.Log.Level = "x" },
			error:    "invalid level: x",
		},
		{
			scenario: "invalid log format",
			modify:   func(cfg *Config) { cfg.Log.Format = "xml" },
			error:    "invalid format: xml",
		},
		{
			scenario: "group size too small",
			modify:   func(cfg *Config) { cfg.GroupSize = 2 },
			error:    "validation: group_size: value must be >= 3",
		},
		{
			scenario: "group size longer than the digest",
			modify:   func(cfg *Config) { cfg.GroupSize = 64 },
			error:    "invalid group_size: 64 exceeds the 40 hex characters of sha-1",
		},
		{
			scenario: "invalid policy",
			modify:   func(cfg *Config) { cfg.Verify.Policy = "some" },
			error:    "validation: verify.policy: invalid value: some",
		},
		{
			scenario: "invalid hash",
			modify:   func(cfg *Config) { cfg.Hash = "md5" },
			error:    "invalid hash: md5",
		},
		{
			scenario: "unknown active algorithm",
			modify:   func(cfg *Config) { cfg.Verify.Active = []string{"v9"} },
			error:    "unknown algorithm: v9",
		},
		{
			scenario: "alias cycle",
			modify: func(cfg *Config) {
				cfg.Aliases = map[string][]string{"a": {"b"}, "b": {"a"}}
				cfg.Verify.Active = []string{"a"}
			},
			error: "alias cycle: a -> b -> a",
		},
	}
	for _, test := range tests {
		cfg := New()
		test.modify(cfg)
		assert.EqualError(t, cfg.Validate(), test.error, test.scenario)
	}
}

func TestValidateGroupSizePerDigest(t *testing.T) {
	tests := []struct {
		hash string
		max  int
	}{
		{"sha-1", 40},
		{"sha-256", 64},
		{"sha3-256", 64},
		{"blake2b-256", 64},
		{"blake3", 64},
		{"sha-512", 128},
	}
	for _, test := range tests {
		cfg := New()
		cfg.Hash = test.hash
		cfg.GroupSize = test.max
		assert.NoError(t, cfg.Validate(), test.hash)

		if test.max < 128 {
			cfg.GroupSize = test.max + 1
			assert.ErrorContains(t, cfg.Validate(), "invalid group_size", test.hash)
		}
	}
}

func TestScheme(t *testing.T) {
	cfg := New()
	cfg.Hash = "sha-256"
	scheme, err := cfg.Scheme()
	require.NoError(t, err)
	l, err := cfg.Licenser()
	require.NoError(t, err)

	set, err := cfg.AlgorithmSet()
	require.NoError(t, err)
	all, err := set.Select()
	require.NoError(t, err)
	key := scheme.Generate("name@thecompany.com", true, 8, all[0].Algorithm, all[1].Algorithm, all[2].Algorithm)
	assert.Equal(t, "name@thecompany.com:cc17d0f7-9833124e-9cd7a476-1d693361-ce679c69", key)
	// v1.0.5 was not generated
	assert.Equal(t, license.KeyMatchFailure, l.Check(key))

	cfg.Verify.Policy = licenser.PolicyAny
	l, err = cfg.Licenser()
	require.NoError(t, err)
	assert.Equal(t, license.Success, l.Check(key))
}

const yamlConfig = `
log:
  level: debug
hash: sha-256
algorithms:
  - name: v2
    type: wrap
    options:
      suffix: "2.0.0"
  - name: signed
    type: hmac
    options:
      secret: s3cret
aliases:
  current: [v2, signed]
verify:
  active: [current]
  policy: any
`

func TestLoader(t *testing.T) {
	cfg := New()
	require.NoError(t, NewLoader(cfg).WithFileContent([]byte(yamlConfig)).Load())
	require.NoError(t, cfg.Validate())

	assert.Equal(t, LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, "sha-256", cfg.Hash)
	assert.Equal(t, 6, cfg.GroupSize)
	assert.Equal(t, licenser.PolicyAny, cfg.Verify.Policy)

	l, err := cfg.Licenser()
	require.NoError(t, err)
	assert.Equal(t, []string{"v2", "signed"}, l.Active())
}

func TestLoaderEnv(t *testing.T) {
	t.Setenv("LIBLICENSE_GROUP_SIZE", "8")
	t.Setenv("LIBLICENSE_HASH", "sha-512")
	t.Setenv("LIBLICENSE_LOG_FORMAT", "json")
	t.Setenv("LIBLICENSE_VERIFY_ACTIVE", "v1.0.1,reversed")

	cfg := New()
	require.NoError(t, NewLoader(cfg).WithEnvPrefix(EnvPrefix).Load())
	assert.Equal(t, 8, cfg.GroupSize)
	assert.Equal(t, "sha-512", cfg.Hash)
	assert.Equal(t, LogFormatJson, cfg.Log.Format)
	assert.Equal(t, []string{"v1.0.1", "reversed"}, cfg.Verify.Active)

	// the file wins over the environment
	cfg = New()
	require.NoError(t, NewLoader(cfg).WithEnvPrefix(EnvPrefix).WithFileContent([]byte(yamlConfig)).Load())
	assert.Equal(t, 8, cfg.GroupSize)
	assert.Equal(t, "sha-256", cfg.Hash)

	t.Setenv("LIBLICENSE_GROUP_SIZE", "eight")
	assert.Error(t, NewLoader(New()).WithEnvPrefix(EnvPrefix).Load())
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "liblicense.yml")
	require.NoError(t, os.WriteFile(filename, []byte("group_size: 10\n"), 0o600))

	cfg := New()
	require.NoError(t, Load(filename, cfg))
	assert.Equal(t, 10, cfg.GroupSize)

	err := Load(filepath.Join(t.TempDir(), "missing.yml"), New())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	cfg = New()
	require.NoError(t, NewLoader(cfg).WithFileContent([]byte("")).Load())
	assert.Equal(t, 6, cfg.GroupSize)
}

func TestNoActiveAlgorithms(t *testing.T) {
	cfg := New()
	cfg.Algorithms = []subkey.Definition{{Name: "r", Type: "reverse"}}
	assert.NoError(t, cfg.Validate())

	set, err := cfg.AlgorithmSet()
	require.NoError(t, err)
	_, err = cfg.ActiveAlgorithms(set)
	assert.Equal(t, licenser.ErrNoActiveAlgorithms, err)
}

func TestAddAlgorithms(t *testing.T) {
	cfg := New()
	cfg.AddAlgorithms()
	assert.Nil(t, cfg.Algorithms)

	cfg.AddAlgorithms(subkey.Definition{Name: "v2", Type: subkey.TypeWrap, Options: map[string]interface{}{"suffix": "2.0.0"}})
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Algorithms, 8)
	assert.Equal(t, []string{"underscore", "v1.0.5"}, cfg.Verify.Active)

	cfg.AddAlgorithms(subkey.Definition{Name: "v2", Type: subkey.TypeReverse})
	assert.EqualError(t, cfg.Validate(), "duplicate algorithm name: v2")
}
