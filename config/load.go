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
	"fmt"

	"github.com/spf13/viper"

	"dirpx.dev/discover/apis"
)

// EnvPrefix prefixes environment overrides, e.g. DISCOVER_META_DEPTH.
const EnvPrefix = "DISCOVER"

// File is the on-disk shape of a discovery configuration.
type File struct {
	Ignore        []string `mapstructure:"ignore"`
	MetaDepth     int      `mapstructure:"meta_depth"`
	QualifierKind string   `mapstructure:"qualifier_kind"`
	MarkerKind    string   `mapstructure:"marker_kind"`
	ExcludeOption string   `mapstructure:"exclude_option"`
	MarkExcluded  bool     `mapstructure:"mark_excluded"`
	LogLevel      string   `mapstructure:"log_level"`
}

// Load reads the configuration at path, or only defaults and environment
// when path is empty. The format follows the file extension (yaml, toml, json).
func Load(path string) (*File, error) {
	v := viper.New()

	// Set defaults
	ignore := make([]string, 0, len(DefaultIgnore))
	for _, k := range DefaultIgnore {
		ignore = append(ignore, string(k))
	}
	v.SetDefault("ignore", ignore)
	v.SetDefault("meta_depth", DefaultMetaDepth)
	v.SetDefault("qualifier_kind", string(DefaultQualifierKind))
	v.SetDefault("marker_kind", string(DefaultMarkerKind))
	v.SetDefault("exclude_option", DefaultExcludeOption)
	v.SetDefault("mark_excluded", DefaultMarkExcluded)
	v.SetDefault("log_level", "info")

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("discover(config): read %s: %w", path, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("discover(config): unmarshal: %w", err)
	}
	return &f, nil
}

// Options converts f into functional options, so file values can be
// combined with programmatic ones.
func (f *File) Options() []Option {
	kinds := make([]apis.Kind, 0, len(f.Ignore))
	for _, k := range f.Ignore {
		kinds = append(kinds, apis.Kind(k))
	}
	opts := []Option{
		WithIgnore(kinds...),
		WithMetaDepth(f.MetaDepth),
		WithMarkExcluded(f.MarkExcluded),
	}
	if f.QualifierKind != "" {
		opts = append(opts, WithQualifierKind(apis.Kind(f.QualifierKind)))
	}
	if f.MarkerKind != "" {
		opts = append(opts, WithMarkerKind(apis.Kind(f.MarkerKind)))
	}
	if f.ExcludeOption != "" {
		opts = append(opts, WithExcludeOption(f.ExcludeOption))
	}
	return opts
}

// Config builds the apis.Config described by f.
func (f *File) Config() apis.Config {
	return NewConfig(f.Options()...)
}
