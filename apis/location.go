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

// Location identifies where on a type an annotation instance was found.
// The set is closed; values are assigned by the pass that found the instance.
type Location uint8

const (
	// LocationType is the type declaration itself.
	LocationType Location = iota
	// LocationSuperType is any ancestor of the type, excluding the universal root.
	LocationSuperType
	// LocationField is an exported field.
	LocationField
	// LocationConstructor is an exported constructor.
	LocationConstructor
	// LocationConstructorParameter is a parameter of an exported constructor.
	LocationConstructorParameter
	// LocationMethod is an exported method.
	LocationMethod
	// LocationMethodParameter is a parameter of an exported method.
	LocationMethodParameter
)

// locations is the fixed pass order. Folding instances of the same kind
// relies on it: a later location overwrites an earlier one.
var locations = [...]Location{
	LocationType,
	LocationSuperType,
	LocationField,
	LocationConstructor,
	LocationConstructorParameter,
	LocationMethod,
	LocationMethodParameter,
}

var locationNames = [...]string{
	LocationType:                 "TYPE",
	LocationSuperType:            "SUPER_TYPE",
	LocationField:                "FIELD",
	LocationConstructor:          "CONSTRUCTOR",
	LocationConstructorParameter: "CONSTRUCTOR_PARAMETER",
	LocationMethod:               "METHOD",
	LocationMethodParameter:      "METHOD_PARAMETER",
}

// Locations returns all locations in pass order.
func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations[:])
	return out
}

// Valid reports whether l is one of the declared locations.
func (l Location) Valid() bool {
	return int(l) < len(locationNames)
}

// String returns the upper-case name of l, e.g. "SUPER_TYPE".
func (l Location) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return locationNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
