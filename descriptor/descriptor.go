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

package descriptor

import (
	"fmt"
	"hash/fnv"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/discover/apis"
)

// Of builds the descriptor of t from everything c discovers on it.
func Of(c apis.Collector, t apis.TypeID) *Descriptor {
	cfg := c.Config()
	d := &Descriptor{
		subject:       t,
		qualifiers:    c.Qualifiers(t),
		kinds:         make(map[apis.Kind]apis.Instance),
		markerKind:    cfg.MarkerKind,
		excludeOption: cfg.ExcludeOption,
	}
	for _, inst := range c.Collect(t) {
		d.with(inst)
	}
	return d
}

// OfMarked builds the descriptor of t as if it carried the discovery marker
// on its declaration. The injected marker holds cfg.MarkExcluded as its
// exclusion flag and overrides a marker found by discovery.
func OfMarked(c apis.Collector, t apis.TypeID) *Descriptor {
	return Of(c, t).with(c.Config().Marker().At(apis.LocationType))
}

// Descriptor is the immutable annotation snapshot of one type: exactly one
// instance per discovered kind, plus the qualifiers declared on the type.
// A Descriptor is never mutated once Of or OfMarked returns and may be
// shared freely between goroutines.
type Descriptor struct {
	subject    apis.TypeID
	qualifiers []apis.Annotation
	kinds      map[apis.Kind]apis.Instance

	markerKind    apis.Kind
	excludeOption string
}

// with stores inst, replacing any instance of the same kind. Only used
// while the descriptor is being built.
func (d *Descriptor) with(inst apis.Instance) *Descriptor {
	d.kinds[inst.Kind] = inst
	return d
}

// Subject returns the identity of the described type.
func (d *Descriptor) Subject() apis.TypeID {
	return d.subject
}

// Kinds returns every discovered kind, sorted.
func (d *Descriptor) Kinds() []apis.Kind {
	return slices.Sorted(maps.Keys(d.kinds))
}

// Instances returns every stored instance, sorted by kind.
func (d *Descriptor) Instances() []apis.Instance {
	out := make([]apis.Instance, 0, len(d.kinds))
	for _, k := range d.Kinds() {
		out = append(out, d.kinds[k])
	}
	return out
}

// Has reports whether k was discovered.
func (d *Descriptor) Has(k apis.Kind) bool {
	_, ok := d.kinds[k]
	return ok
}

// Instance returns the instance stored for k.
func (d *Descriptor) Instance(k apis.Kind) (apis.Instance, bool) {
	inst, ok := d.kinds[k]
	return inst, ok
}

// Annotation returns the annotation stored for k.
func (d *Descriptor) Annotation(k apis.Kind) (apis.Annotation, bool) {
	inst, ok := d.kinds[k]
	if !ok {
		return apis.Annotation{}, false
	}
	return inst.Annotation(), true
}

// Location returns where the stored instance of k was found.
func (d *Descriptor) Location(k apis.Kind) (apis.Location, bool) {
	inst, ok := d.kinds[k]
	if !ok {
		return 0, false
	}
	return inst.Location, true
}

// Qualifiers returns the qualifier annotations of the type. May be empty.
func (d *Descriptor) Qualifiers() []apis.Annotation {
	return slices.Clone(d.qualifiers)
}

// IsExcluded reports whether the type carries the discovery marker with its
// exclusion flag set. Without the marker it is never excluded.
func (d *Descriptor) IsExcluded() bool {
	inst, ok := d.kinds[d.markerKind]
	if !ok {
		return false
	}
	return inst.Attributes.Bool(d.excludeOption)
}

// Len returns the number of discovered kinds.
func (d *Descriptor) Len() int {
	return len(d.kinds)
}

// Equal reports whether d and o describe the same type with equal
// instances for every kind. A nil descriptor only equals nil.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d == o {
		return true
	}
	return d.subject == o.subject && maps.EqualFunc(d.kinds, o.kinds, apis.Instance.Equal)
}

// Hash is derived from the subject identity alone, so equal descriptors
// always hash alike.
func (d *Descriptor) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(d.subject))
	return h.Sum64()
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s{", d.subject)
	for i, inst := range d.Instances() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s@%s", inst.Kind, inst.Location)
	}
	b.WriteString("}")
	return b.String()
}
