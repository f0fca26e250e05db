// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order. Load errors
// are accumulated and reported by build, so every broken source is listed.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

// build merges the layers. mergo only fills zero fields, so the layer
// appended first has the highest priority.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}

	return merged, merged.validate()
}

// add appends the layer produced by load, or records its error under source.
func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	layer, err := load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if layer != nil {
		b.configs = append(b.configs, layer)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) {
		layer := new(StructuredConfig)
		return layer, parseEnv(layer)
	})
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}
	return b.add("flags", func() (*StructuredConfig, error) { return flags.config(), nil })
}

// withJSON loads the file named by the highest priority layer that sets one.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}
	return b.add("json "+path, func() (*StructuredConfig, error) { return parseJSON(path) })
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func() (*StructuredConfig, error) { return defaultConfig(), nil })
}

func (b *configBuilder) jsonPath() string {
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			return layer.JSONFilePath
		}
	}
	return ""
}
