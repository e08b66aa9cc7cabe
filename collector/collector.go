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

package collector

import (
	"slices"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/strategy"
)

// New constructs a Collector over p that runs the given passes in order.
// With no passes, strategy.Passes() is used. Nil passes are ignored.
// The returned collector is safe for concurrent use provided p is.
func New(p apis.Provider, cfg apis.Config, passes ...apis.Pass) *Collector {
	if len(passes) == 0 {
		passes = strategy.Passes()
	}
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Pass, 0, len(passes))
	for _, s := range passes {
		if s != nil {
			out = append(out, s)
		}
	}
	if cfg.MetaDepth < 0 {
		cfg.MetaDepth = 0
	}
	cfg.Ignore = slices.Clone(cfg.Ignore)
	return &Collector{p: p, cfg: cfg, passes: out}
}

// Collector is an immutable, order-preserving chain of passes over a Provider.
type Collector struct {
	p      apis.Provider
	cfg    apis.Config
	passes []apis.Pass
}

// Ensure Collector implements apis.Collector.
var _ apis.Collector = (*Collector)(nil)

// Config returns the configuration the collector was built with.
func (c *Collector) Config() apis.Config {
	cfg := c.cfg
	cfg.Ignore = slices.Clone(c.cfg.Ignore)
	return cfg
}

// Provider returns the provider the collector reads from.
func (c *Collector) Provider() apis.Provider {
	return c.p
}

// Collect returns every annotation instance found on t, pass by pass.
// Each direct annotation is followed by the annotations of its kind, up to
// cfg.MetaDepth levels, tagged with the same location. Ignored kinds are
// dropped at every level and are not expanded.
func (c *Collector) Collect(t apis.TypeID) []apis.Instance {
	out := make([]apis.Instance, 0)
	for _, s := range c.passes {
		loc := s.Location()
		out = c.expand(out, s.Direct(c.p, t), loc, 0)
	}
	return out
}

// expand appends anns at loc and recurses into their kinds while depth
// allows.
func (c *Collector) expand(out []apis.Instance, anns []apis.Annotation, loc apis.Location, depth int) []apis.Instance {
	for _, a := range anns {
		if c.cfg.Ignored(a.Kind) {
			continue
		}
		out = append(out, a.At(loc))
		if depth < c.cfg.MetaDepth {
			out = c.expand(out, c.p.KindAnnotations(a.Kind), loc, depth+1)
		}
	}
	return out
}

// Qualifiers returns the direct annotations of t whose kind is itself
// annotated with cfg.QualifierKind, in declaration order.
func (c *Collector) Qualifiers(t apis.TypeID) []apis.Annotation {
	out := make([]apis.Annotation, 0)
	if c.cfg.QualifierKind == "" {
		return out
	}
	for _, a := range c.p.Annotations(t) {
		if c.isQualifier(a.Kind) {
			out = append(out, a)
		}
	}
	return out
}

func (c *Collector) isQualifier(k apis.Kind) bool {
	for _, meta := range c.p.KindAnnotations(k) {
		if meta.Kind == c.cfg.QualifierKind {
			return true
		}
	}
	return false
}
