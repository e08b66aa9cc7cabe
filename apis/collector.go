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

// Pass is one structural pass of the collector. It reports the direct
// annotations found at its location; filtering and meta-annotation
// expansion are the collector's job.
type Pass interface {
	// Location is the location every annotation found by this pass gets.
	Location() Location
	// Direct returns the annotations found directly at this pass's
	// location on t, in declaration order.
	Direct(p Provider, t TypeID) []Annotation
}

// Collector turns a type into its annotation observations.
type Collector interface {
	// Collect returns every annotation instance found on t, including one
	// hop of meta-annotations. A type without annotations yields an empty slice.
	Collect(t TypeID) []Instance
	// Qualifiers returns the direct type annotations of t whose kind is
	// marked as a qualifier, in discovery order.
	Qualifiers(t TypeID) []Annotation
	// Config returns the configuration the collector was built with.
	Config() Config
}
