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

// Passes returns the seven structural passes in their fixed order:
// TYPE, SUPER_TYPE, FIELD, CONSTRUCTOR, CONSTRUCTOR_PARAMETER, METHOD,
// METHOD_PARAMETER. The order decides which location wins when a kind is
// found more than once.
func Passes() []apis.Pass {
	return []apis.Pass{
		NewTypePass(),
		NewSuperTypePass(),
		NewFieldPass(),
		NewConstructorPass(),
		NewConstructorParameterPass(),
		NewMethodPass(),
		NewMethodParameterPass(),
	}
}
