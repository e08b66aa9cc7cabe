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

package apis

import (
	"maps"
	"reflect"
	"slices"

	"github.com/spf13/cast"
)

// Kind is the declared identity of an annotation, e.g. "inject.Named".
type Kind string

// Attributes carries the attribute values of one annotation.
// A nil Attributes is valid and empty.
type Attributes map[string]any

// Get returns the raw value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// String returns the value under key coerced to a string.
// Missing or non-coercible values yield ("", false).
func (a Attributes) String(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// Bool returns the value under key coerced to a bool ("true", 1, true, ...).
// Missing or non-coercible values yield false.
func (a Attributes) Bool(key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// Int returns the value under key coerced to an int.
func (a Attributes) Int(key string) (int, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Strings returns the value under key coerced to a string slice.
func (a Attributes) Strings(key string) ([]string, bool) {
	v, ok := a[key]
	if !ok {
		return nil, false
	}
	ss, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, false
	}
	return ss, true
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Clone returns a shallow copy of a. Cloning nil yields nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// Equal reports whether a and o hold deeply equal values under the same keys.
// A nil and an empty Attributes are equal.
func (a Attributes) Equal(o Attributes) bool {
	return maps.EqualFunc(a, o, func(x, y any) bool {
		return reflect.DeepEqual(x, y)
	})
}

// Annotation is one annotation as declared on an element, before discovery
// assigns it a Location.
type Annotation struct {
	// Kind is the annotation kind.
	Kind Kind `json:"kind"`
	// Attributes are the values given on the element.
	Attributes Attributes `json:"attributes,omitempty"`
}

// Equal reports whether a and o have the same kind and equal attributes.
func (a Annotation) Equal(o Annotation) bool {
	return a.Kind == o.Kind && a.Attributes.Equal(o.Attributes)
}

// At tags a with the location it was discovered at.
func (a Annotation) At(loc Location) Instance {
	return Instance{Kind: a.Kind, Location: loc, Attributes: a.Attributes}
}

// Instance is a discovered annotation: its kind, where it was found, and
// its attribute values. Instances are read-only once produced.
type Instance struct {
	// Kind is the annotation kind.
	Kind Kind `json:"kind"`
	// Location is the structural location the instance was found at.
	Location Location `json:"location"`
	// Attributes are the attribute values of the underlying annotation.
	Attributes Attributes `json:"attributes,omitempty"`
}

// Annotation drops the location.
func (i Instance) Annotation() Annotation {
	return Annotation{Kind: i.Kind, Attributes: i.Attributes}
}

// Equal reports whether kind, location and attributes are all equal.
func (i Instance) Equal(o Instance) bool {
	return i.Kind == o.Kind && i.Location == o.Location && i.Attributes.Equal(o.Attributes)
}
