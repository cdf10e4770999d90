package config

import (
	"github.com/liblicense/liblicense/config/providers"
)

const EnvPrefix = "LIBLICENSE"

// Loader is configuration loader
type Loader struct {
	cfg         *Config
	envPrefix   string
	filename    string
	fileContent []byte
}

func NewLoader(cfg *Config) *Loader {
	return &Loader{cfg: cfg}
}

func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

func (l *Loader) WithFilename(filename string) *Loader {
	l.filename = filename
	return l
}

func (l *Loader) WithFileContent(content []byte) *Loader {
	l.fileContent = content
	return l
}

// Load applies the environment, then the file on top of it.
func (l *Loader) Load() error {
	if l.envPrefix != "" {
		if err := providers.NewEnvProvider(l.envPrefix).Load(l.cfg); err != nil {
			return err
		}
	}
	return providers.NewYAMLProvider(l.filename, l.fileContent).Load(l.cfg)
}

func Load(filename string, cfg *Config) error {
	return NewLoader(cfg).WithEnvPrefix(EnvPrefix).WithFilename(filename).Load()
}
