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

package reflection

import (
	"strings"

	"dirpx.dev/discover/apis"
)

// ParseTag parses a "discover" struct tag value into annotations.
//
// Annotations are separated by ';'. Each starts with its kind, followed by
// space-separated attributes: "key=value" stores the string value, a bare
// "key" stores true.
//
//	`discover:"inject.Inject; config.Property name=db.url required"`
func ParseTag(tag string) []apis.Annotation {
	var out []apis.Annotation
	for _, part := range strings.Split(tag, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		a := apis.Annotation{Kind: apis.Kind(fields[0])}
		for _, kv := range fields[1:] {
			if a.Attributes == nil {
				a.Attributes = apis.Attributes{}
			}
			if k, v, ok := strings.Cut(kv, "="); ok {
				a.Attributes[k] = v
			} else {
				a.Attributes[kv] = true
			}
		}
		out = append(out, a)
	}
	return out
}
