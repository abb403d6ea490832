package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	envFile string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.EnvFile = b.envFile

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withEnv reads the override file at envFile, overlays environ on top of it
// and parses the result, defaults included.
func (b *configBuilder) withEnv(envFile string, environ []string) *configBuilder {
	fileValues, err := readEnvFile(envFile)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, mergeEnvironment(fileValues, environ)); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.envFile = envFile
	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags.config())
	return b
}
