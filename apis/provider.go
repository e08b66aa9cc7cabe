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

// TypeID is the identity of a subject type. Providers choose the format;
// the reflection provider uses "import/path.Name".
type TypeID string

// Provider exposes the structural metadata of types. It is the only way the
// collector reaches type information, so the discovery algorithm does not
// depend on how a host represents types or annotations.
//
// Implementations must be safe for concurrent use and must return only the
// annotations declared directly on the element asked about.
type Provider interface {
	// Annotations returns the annotations declared directly on t.
	Annotations(t TypeID) []Annotation
	// Parent returns the declared parent of t. ok is false once the chain
	// reaches the universal root, which never contributes annotations.
	Parent(t TypeID) (parent TypeID, ok bool)
	// Fields returns the fields of t.
	Fields(t TypeID) []Member
	// Constructors returns the constructors of t.
	Constructors(t TypeID) []Executable
	// Methods returns the methods of t.
	Methods(t TypeID) []Executable
	// KindAnnotations returns the annotations declared on the declaration
	// of kind k itself (its meta-annotations).
	KindAnnotations(k Kind) []Annotation
}

// Member is a field, constructor or method of a type.
type Member struct {
	// Name is the member name, informational only.
	Name string
	// Exported reports whether the member is publicly visible.
	// Unexported members never contribute annotations.
	Exported bool
	// Annotations are declared directly on the member.
	Annotations []Annotation
}

// Parameter is one parameter of a constructor or method.
type Parameter struct {
	// Name is the parameter name, informational only.
	Name string
	// Annotations are declared directly on the parameter.
	Annotations []Annotation
}

// Executable is a constructor or method with its parameters.
type Executable struct {
	Member
	// Parameters in declaration order.
	Parameters []Parameter
}
