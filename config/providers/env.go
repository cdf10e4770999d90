package providers

import (
	"github.com/kelseyhightower/envconfig"
)

type EnvProvider struct {
	prefix string
}

func NewEnvProvider(prefix string) *EnvProvider {
	return &EnvProvider{prefix: prefix}
}

// Load applies the environment to cfg. Fields whose variable is unset are
// reset to their `default` tag, so Load must run before any other source.
func (p *EnvProvider) Load(cfg any) error {
	return envconfig.Process(p.prefix, cfg)
}
