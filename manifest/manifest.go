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

package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/provider/static"
)

var (
	// ErrUnknownFormat is returned for file extensions without a decoder.
	ErrUnknownFormat = errors.New("discover(manifest): unknown manifest format")
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Manifest declares annotation kinds and types for a static provider.
type Manifest struct {
	Kinds []Kind `yaml:"kinds" toml:"kinds" json:"kinds"`
	Types []Type `yaml:"types" toml:"types" json:"types"`
}

// Kind declares the meta-annotations of an annotation kind.
type Kind struct {
	Name        string       `yaml:"name" toml:"name" json:"name"`
	Annotations []Annotation `yaml:"annotations" toml:"annotations" json:"annotations"`
}

// Annotation is one annotation with its attribute values.
type Annotation struct {
	Kind       string         `yaml:"kind" toml:"kind" json:"kind"`
	Attributes map[string]any `yaml:"attributes" toml:"attributes" json:"attributes"`
}

// Member is a field, constructor or method. Exported defaults to true.
type Member struct {
	Name        string       `yaml:"name" toml:"name" json:"name"`
	Exported    *bool        `yaml:"exported" toml:"exported" json:"exported"`
	Annotations []Annotation `yaml:"annotations" toml:"annotations" json:"annotations"`
	Parameters  []Parameter  `yaml:"parameters" toml:"parameters" json:"parameters"`
}

// Parameter is a constructor or method parameter.
type Parameter struct {
	Name        string       `yaml:"name" toml:"name" json:"name"`
	Annotations []Annotation `yaml:"annotations" toml:"annotations" json:"annotations"`
}

// Type declares one type.
type Type struct {
	Name         string       `yaml:"name" toml:"name" json:"name"`
	Parent       string       `yaml:"parent" toml:"parent" json:"parent"`
	Annotations  []Annotation `yaml:"annotations" toml:"annotations" json:"annotations"`
	Fields       []Member     `yaml:"fields" toml:"fields" json:"fields"`
	Constructors []Member     `yaml:"constructors" toml:"constructors" json:"constructors"`
	Methods      []Member     `yaml:"methods" toml:"methods" json:"methods"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("discover(manifest): read %s: %w", path, err)
	}
	return Decode(data, format)
}

// Decode decodes a manifest. JSON input may contain comments and trailing commas.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("discover(manifest): decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
			return nil, fmt.Errorf("discover(manifest): decode toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("discover(manifest): decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &m, nil
}

// Provider builds a static provider holding every kind and type of m.
func (m *Manifest) Provider() (*static.Provider, error) {
	p := static.New()
	for _, k := range m.Kinds {
		p.DeclareKind(apis.Kind(k.Name), annotations(k.Annotations)...)
	}
	for _, t := range m.Types {
		err := p.AddType(static.Type{
			ID:           apis.TypeID(t.Name),
			Parent:       apis.TypeID(t.Parent),
			Annotations:  annotations(t.Annotations),
			Fields:       members(t.Fields),
			Constructors: executables(t.Constructors),
			Methods:      executables(t.Methods),
		})
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func annotations(in []Annotation) []apis.Annotation {
	out := make([]apis.Annotation, 0, len(in))
	for _, a := range in {
		out = append(out, apis.Annotation{Kind: apis.Kind(a.Kind), Attributes: apis.Attributes(a.Attributes)})
	}
	return out
}

func member(m Member) apis.Member {
	exported := true
	if m.Exported != nil {
		exported = *m.Exported
	}
	return apis.Member{Name: m.Name, Exported: exported, Annotations: annotations(m.Annotations)}
}

func members(in []Member) []apis.Member {
	out := make([]apis.Member, 0, len(in))
	for _, m := range in {
		out = append(out, member(m))
	}
	return out
}

func executables(in []Member) []apis.Executable {
	out := make([]apis.Executable, 0, len(in))
	for _, m := range in {
		e := apis.Executable{Member: member(m)}
		for _, p := range m.Parameters {
			e.Parameters = append(e.Parameters, apis.Parameter{Name: p.Name, Annotations: annotations(p.Annotations)})
		}
		out = append(out, e)
	}
	return out
}
