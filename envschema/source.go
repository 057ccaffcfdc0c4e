// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envschema

//go:generate mockgen -source=source.go -destination=../internal/mock/source_mock.go -package=mock

import (
	"fmt"
	"maps"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Source supplies raw values by name. A value that is present but empty is
// distinct from an absent one.
type Source interface {
	// Lookup returns the raw value of name and whether it is set.
	Lookup(name string) (string, bool)
}

type mapSource map[string]string

func (m mapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Environ returns a snapshot of the process environment taken at call time.
func Environ() Source {
	return mapSource(env.ToMap(os.Environ()))
}

// Map returns a Source backed by a copy of values. A nil map is an empty
// source, not the environment.
func Map(values map[string]string) Source {
	return mapSource(maps.Clone(values))
}

// Layered merges several mappings into one Source. Keys of later layers
// override earlier ones, so a typical call is
//
//	envschema.Layered(defaults, fileValues, env.ToMap(os.Environ()))
func Layered(layers ...map[string]string) (Source, error) {
	merged := make(map[string]string)
	for i, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging source layer %d: %w", i, err)
		}
	}

	return mapSource(merged), nil
}
