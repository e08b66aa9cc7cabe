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

// NewSet returns a Set holding ds, deduplicated.
func NewSet(ds ...*Descriptor) *Set {
	s := &Set{buckets: make(map[uint64][]*Descriptor)}
	for _, d := range ds {
		s.Add(d)
	}
	return s
}

// Set is an insertion-ordered set of descriptors. Membership uses Hash and
// Equal, so two equal descriptors built separately count once.
// A Set is not safe for concurrent mutation.
type Set struct {
	buckets map[uint64][]*Descriptor
	order   []*Descriptor
}

// Add inserts d and reports whether it was not already present.
// Nil descriptors are ignored.
func (s *Set) Add(d *Descriptor) bool {
	if d == nil || s.Contains(d) {
		return false
	}
	h := d.Hash()
	s.buckets[h] = append(s.buckets[h], d)
	s.order = append(s.order, d)
	return true
}

// Contains reports whether an equal descriptor is present.
func (s *Set) Contains(d *Descriptor) bool {
	if d == nil {
		return false
	}
	for _, e := range s.buckets[d.Hash()] {
		if e.Equal(d) {
			return true
		}
	}
	return false
}

// Len returns the number of descriptors in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Slice returns the members in insertion order.
func (s *Set) Slice() []*Descriptor {
	out := make([]*Descriptor, len(s.order))
	copy(out, s.order)
	return out
}
