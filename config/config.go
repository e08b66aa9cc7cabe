/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"slices"

	"dirpx.dev/discover/apis"
)

const (
	// DefaultMetaDepth follows meta-annotations exactly one level deep.
	DefaultMetaDepth = 1
	// DefaultQualifierKind marks qualifier annotation kinds.
	DefaultQualifierKind apis.Kind = "inject.Qualifier"
	// DefaultMarkerKind is the discovery marker.
	DefaultMarkerKind apis.Kind = "discover.Discoverable"
	// DefaultExcludeOption is the marker attribute holding the exclusion flag.
	DefaultExcludeOption = "exclude"
	// DefaultMarkExcluded is the flag carried by injected markers. Types
	// registered without discovery are not treated as registrable units.
	DefaultMarkExcluded = true
)

// DefaultIgnore is the default set of structural marker kinds dropped
// during discovery.
var DefaultIgnore = []apis.Kind{
	"meta.Target",
	"meta.Retention",
	"meta.Documented",
	"inject.Stereotype",
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MetaDepth is valid.
	if cfg.MetaDepth < 0 {
		cfg.MetaDepth = DefaultMetaDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Ignore:        slices.Clone(DefaultIgnore),
		MetaDepth:     DefaultMetaDepth,
		QualifierKind: DefaultQualifierKind,
		MarkerKind:    DefaultMarkerKind,
		ExcludeOption: DefaultExcludeOption,
		MarkExcluded:  DefaultMarkExcluded,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIgnore replaces the ignore set.
func WithIgnore(kinds ...apis.Kind) Option {
	return func(c *apis.Config) {
		c.Ignore = slices.Clone(kinds)
	}
}

// WithAdditionalIgnore extends the ignore set.
func WithAdditionalIgnore(kinds ...apis.Kind) Option {
	return func(c *apis.Config) {
		for _, k := range kinds {
			if !slices.Contains(c.Ignore, k) {
				c.Ignore = append(c.Ignore, k)
			}
		}
	}
}

// WithMetaDepth sets the MetaDepth option.
// A negative value resets to the default.
func WithMetaDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth < 0 {
			c.MetaDepth = DefaultMetaDepth
			return
		}
		c.MetaDepth = depth
	}
}

// WithQualifierKind sets the QualifierKind option.
func WithQualifierKind(k apis.Kind) Option {
	return func(c *apis.Config) {
		c.QualifierKind = k
	}
}

// WithMarkerKind sets the MarkerKind option.
func WithMarkerKind(k apis.Kind) Option {
	return func(c *apis.Config) {
		c.MarkerKind = k
	}
}

// WithExcludeOption sets the ExcludeOption option.
func WithExcludeOption(name string) Option {
	return func(c *apis.Config) {
		c.ExcludeOption = name
	}
}

// WithMarkExcluded sets the MarkExcluded option.
func WithMarkExcluded(excluded bool) Option {
	return func(c *apis.Config) {
		c.MarkExcluded = excluded
	}
}
