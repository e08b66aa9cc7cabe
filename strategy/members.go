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

// NewFieldPass creates an apis.Pass over the exported fields of the type.
func NewFieldPass() apis.Pass {
	return memberPass{
		loc: apis.LocationField,
		members: func(p apis.Provider, t apis.TypeID) []apis.Member {
			return p.Fields(t)
		},
	}
}

// NewConstructorPass creates an apis.Pass over the exported constructors of the type.
func NewConstructorPass() apis.Pass {
	return memberPass{
		loc: apis.LocationConstructor,
		members: func(p apis.Provider, t apis.TypeID) []apis.Member {
			return members(p.Constructors(t))
		},
	}
}

// NewMethodPass creates an apis.Pass over the exported methods of the type.
func NewMethodPass() apis.Pass {
	return memberPass{
		loc: apis.LocationMethod,
		members: func(p apis.Provider, t apis.TypeID) []apis.Member {
			return members(p.Methods(t))
		},
	}
}

// NewConstructorParameterPass creates an apis.Pass over every parameter of
// every exported constructor of the type.
func NewConstructorParameterPass() apis.Pass {
	return parameterPass{
		loc: apis.LocationConstructorParameter,
		executables: func(p apis.Provider, t apis.TypeID) []apis.Executable {
			return p.Constructors(t)
		},
	}
}

// NewMethodParameterPass creates an apis.Pass over every parameter of
// every exported method of the type.
func NewMethodParameterPass() apis.Pass {
	return parameterPass{
		loc: apis.LocationMethodParameter,
		executables: func(p apis.Provider, t apis.TypeID) []apis.Executable {
			return p.Methods(t)
		},
	}
}

// memberPass reports annotations declared on exported members.
type memberPass struct {
	loc     apis.Location
	members func(apis.Provider, apis.TypeID) []apis.Member
}

// Ensure memberPass implements apis.Pass.
var _ apis.Pass = memberPass{}

func (s memberPass) Location() apis.Location { return s.loc }

func (s memberPass) Direct(p apis.Provider, t apis.TypeID) []apis.Annotation {
	var out []apis.Annotation
	for _, m := range s.members(p, t) {
		if !m.Exported {
			continue
		}
		out = append(out, m.Annotations...)
	}
	return out
}

// parameterPass reports annotations declared on parameters of exported
// constructors or methods.
type parameterPass struct {
	loc         apis.Location
	executables func(apis.Provider, apis.TypeID) []apis.Executable
}

// Ensure parameterPass implements apis.Pass.
var _ apis.Pass = parameterPass{}

func (s parameterPass) Location() apis.Location { return s.loc }

func (s parameterPass) Direct(p apis.Provider, t apis.TypeID) []apis.Annotation {
	var out []apis.Annotation
	for _, e := range s.executables(p, t) {
		if !e.Exported {
			continue
		}
		for _, param := range e.Parameters {
			out = append(out, param.Annotations...)
		}
	}
	return out
}

func members(es []apis.Executable) []apis.Member {
	out := make([]apis.Member, len(es))
	for i, e := range es {
		out[i] = e.Member
	}
	return out
}
