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

package config_test

import (
	"slices"
	"testing"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MetaDepth != config.DefaultMetaDepth {
		t.Fatalf("MetaDepth = %d, want %d", got.MetaDepth, config.DefaultMetaDepth)
	}
	if got.QualifierKind != config.DefaultQualifierKind {
		t.Fatalf("QualifierKind = %q, want %q", got.QualifierKind, config.DefaultQualifierKind)
	}
	if got.MarkerKind != config.DefaultMarkerKind {
		t.Fatalf("MarkerKind = %q, want %q", got.MarkerKind, config.DefaultMarkerKind)
	}
	if got.ExcludeOption != config.DefaultExcludeOption {
		t.Fatalf("ExcludeOption = %q, want %q", got.ExcludeOption, config.DefaultExcludeOption)
	}
	if got.MarkExcluded != config.DefaultMarkExcluded {
		t.Fatalf("MarkExcluded = %v, want %v", got.MarkExcluded, config.DefaultMarkExcluded)
	}
	if !slices.Equal(got.Ignore, config.DefaultIgnore) {
		t.Fatalf("Ignore = %v, want %v", got.Ignore, config.DefaultIgnore)
	}
}

func TestDefaultConfig_IgnoreIsFresh(t *testing.T) {
	a := config.DefaultConfig()
	a.Ignore[0] = "mutated"

	if b := config.DefaultConfig(); b.Ignore[0] == "mutated" {
		t.Fatalf("DefaultConfig shares its Ignore slice")
	}
}

func TestWithIgnore_Replaces(t *testing.T) {
	c := config.NewConfig(config.WithIgnore("a.X"))
	if !slices.Equal(c.Ignore, []apis.Kind{"a.X"}) {
		t.Fatalf("Ignore = %v, want [a.X]", c.Ignore)
	}

	empty := config.NewConfig(config.WithIgnore())
	if len(empty.Ignore) != 0 {
		t.Fatalf("Ignore = %v, want empty", empty.Ignore)
	}
	if empty.Ignored("meta.Retention") {
		t.Fatalf("meta.Retention ignored after WithIgnore()")
	}
}

func TestWithAdditionalIgnore_ExtendsWithoutDuplicates(t *testing.T) {
	c := config.NewConfig(config.WithAdditionalIgnore("a.X", "meta.Retention", "a.X"))

	if len(c.Ignore) != len(config.DefaultIgnore)+1 {
		t.Fatalf("Ignore = %v, want defaults plus a.X", c.Ignore)
	}
	if !c.Ignored("a.X") || !c.Ignored("meta.Target") {
		t.Fatalf("Ignore = %v, want a.X and meta.Target", c.Ignore)
	}
}

func TestWithMetaDepth(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{-1, config.DefaultMetaDepth},
	}
	for _, tc := range cases {
		c := config.NewConfig(config.WithMetaDepth(tc.in))
		if c.MetaDepth != tc.want {
			t.Errorf("WithMetaDepth(%d): MetaDepth = %d, want %d", tc.in, c.MetaDepth, tc.want)
		}
	}
}

func TestNewConfig_Guardrails_NegativeDepthResets(t *testing.T) {
	bad := func(c *apis.Config) { c.MetaDepth = -7 }
	c := config.NewConfig(bad)
	if c.MetaDepth != config.DefaultMetaDepth {
		t.Fatalf("MetaDepth = %d, want default %d", c.MetaDepth, config.DefaultMetaDepth)
	}
}

func TestMarker(t *testing.T) {
	c := config.NewConfig(
		config.WithMarkerKind("x.Mark"),
		config.WithExcludeOption("skip"),
		config.WithMarkExcluded(false),
	)

	m := c.Marker()
	if m.Kind != "x.Mark" {
		t.Fatalf("Marker().Kind = %q, want x.Mark", m.Kind)
	}
	v, ok := m.Attributes.Get("skip")
	if !ok || v != false {
		t.Fatalf("Marker().Attributes[skip] = (%v,%v), want (false,true)", v, ok)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithMetaDepth(2),
		config.WithMetaDepth(0),
		config.WithQualifierKind("a.Q"),
		config.WithQualifierKind("b.Q"),
		config.WithMarkExcluded(false),
		config.WithMarkExcluded(true),
	)

	if c.MetaDepth != 0 {
		t.Errorf("MetaDepth = %d, want 0 (last option wins)", c.MetaDepth)
	}
	if c.QualifierKind != "b.Q" {
		t.Errorf("QualifierKind = %q, want b.Q (last option wins)", c.QualifierKind)
	}
	if !c.MarkExcluded {
		t.Errorf("MarkExcluded = %v, want true (last option wins)", c.MarkExcluded)
	}
}
