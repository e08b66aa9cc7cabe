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

import "slices"

// Config carries the read-only knobs of discovery. It is passed by value
// and should be treated as immutable by implementations.
type Config struct {
	// Ignore lists structural marker kinds (retention, target, documentation,
	// stereotype markers, ...) that are dropped at every pass, direct or expanded.
	Ignore []Kind

	// MetaDepth bounds meta-annotation expansion. 1 follows annotations on
	// the kinds of directly found annotations and nothing deeper; 0 disables
	// expansion. The bound is the only cycle guard.
	MetaDepth int

	// QualifierKind marks annotation kinds that act as qualifiers.
	QualifierKind Kind

	// MarkerKind is the discovery marker used to opt a type in.
	MarkerKind Kind

	// ExcludeOption is the attribute of the marker carrying the exclusion flag.
	ExcludeOption string

	// MarkExcluded is the exclusion flag carried by markers injected into
	// force-marked descriptors.
	MarkExcluded bool
}

// Ignored reports whether k is in the ignore set.
func (c Config) Ignored(k Kind) bool {
	return slices.Contains(c.Ignore, k)
}

// Marker returns the synthetic marker annotation injected into
// force-marked descriptors.
func (c Config) Marker() Annotation {
	return Annotation{
		Kind:       c.MarkerKind,
		Attributes: Attributes{c.ExcludeOption: c.MarkExcluded},
	}
}
