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

package strategy

import (
	"dirpx.dev/discover/apis"
)

// NewTypePass creates an apis.Pass reporting the annotations declared on
// the type itself.
func NewTypePass() apis.Pass {
	return typePass{}
}

// typePass reads the type declaration.
type typePass struct{}

// Ensure typePass implements apis.Pass.
var _ apis.Pass = typePass{}

// Location returns apis.LocationType.
func (typePass) Location() apis.Location { return apis.LocationType }

// Direct returns the annotations declared on t.
func (typePass) Direct(p apis.Provider, t apis.TypeID) []apis.Annotation {
	return p.Annotations(t)
}

// NewSuperTypePass creates an apis.Pass that walks the ancestor chain of
// the type upward and reports the annotations declared on each ancestor.
func NewSuperTypePass() apis.Pass {
	return superTypePass{}
}

// superTypePass walks Provider.Parent until the root.
type superTypePass struct{}

// Ensure superTypePass implements apis.Pass.
var _ apis.Pass = superTypePass{}

// Location returns apis.LocationSuperType.
func (superTypePass) Location() apis.Location { return apis.LocationSuperType }

// Direct returns the annotations of every ancestor of t, nearest first.
// A malformed provider reporting a cyclic chain stops at the first revisit.
func (superTypePass) Direct(p apis.Provider, t apis.TypeID) []apis.Annotation {
	var out []apis.Annotation
	seen := map[apis.TypeID]struct{}{t: {}}
	for parent, ok := p.Parent(t); ok; parent, ok = p.Parent(parent) {
		if _, dup := seen[parent]; dup {
			break
		}
		seen[parent] = struct{}{}
		out = append(out, p.Annotations(parent)...)
	}
	return out
}
