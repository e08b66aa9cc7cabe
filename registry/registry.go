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

package registry

import (
	"errors"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/descriptor"
	"dirpx.dev/discover/metrics"
)

var (
	// ErrAlreadySealed is returned by every Seal after the first.
	ErrAlreadySealed = errors.New("discover(registry): registry may only be sealed once, during startup")
)

// New constructs an unsealed Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:  uuid.New(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Of builds force-marked descriptors for types and seals them into a new
// Registry at once. It supports using discovery outside any managed
// lifecycle: every type can be queried by the marker kind.
func Of(c apis.Collector, types []apis.TypeID, opts ...Option) *Registry {
	r := New(opts...)
	ds := make([]*descriptor.Descriptor, 0, len(types))
	for _, t := range types {
		ds = append(ds, descriptor.OfMarked(c, t))
		if r.m != nil {
			r.m.IncrementBuilt(metrics.ModeMarked)
		}
	}
	if err := r.Seal(ds); err != nil {
		// A fresh registry cannot already be sealed.
		panic(err)
	}
	return r
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics enables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.m = m
	}
}

// Registry is the process-wide index from annotation kind to the
// descriptors carrying it. It moves from unsealed to sealed exactly once;
// the index is built by that transition and never changes afterwards.
//
// Readers never block. Before sealing every query returns empty results.
type Registry struct {
	id     uuid.UUID
	sealed atomic.Bool
	idx    atomic.Pointer[index]
	log    *zap.Logger
	m      *metrics.Metrics
}

// index is published once and read-only afterwards.
type index struct {
	byKind map[apis.Kind][]*descriptor.Descriptor
	all    []*descriptor.Descriptor
}

// ID identifies the registry in logs.
func (r *Registry) ID() uuid.UUID {
	return r.id
}

// Sealed reports whether a Seal call has claimed the registry. The claim
// precedes publication of the index, so a reader racing the winning Seal
// may briefly see Sealed() == true with empty query results.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Seal indexes ds under every kind each descriptor carries. Only the
// first call has an effect; later calls return ErrAlreadySealed and leave
// the index as the first call built it. Under concurrent calls exactly
// one succeeds.
func (r *Registry) Seal(ds []*descriptor.Descriptor) error {
	if !r.sealed.CompareAndSwap(false, true) {
		if r.m != nil {
			r.m.IncrementSealRejected()
		}
		r.log.Warn("rejected second seal", zap.Stringer("registry", r.id))
		return ErrAlreadySealed
	}

	start := time.Now()
	byKind := make(map[apis.Kind][]*descriptor.Descriptor)
	for _, d := range ds {
		if d == nil {
			continue
		}
		for _, k := range d.Kinds() {
			byKind[k] = append(byKind[k], d)
		}
	}

	idx := &index{byKind: byKind}
	idx.all = union(idx, slices.Sorted(maps.Keys(byKind)))
	r.idx.Store(idx)

	if r.m != nil {
		r.m.ObserveSeal(start, len(byKind), len(idx.all))
	}
	r.log.Info("sealed",
		zap.Stringer("registry", r.id),
		zap.Int("kinds", len(byKind)),
		zap.Int("descriptors", len(idx.all)),
	)
	return nil
}

// Query returns the descriptors carrying k, in seal order. An unknown kind
// yields an empty slice, before and after sealing.
func (r *Registry) Query(k apis.Kind) []*descriptor.Descriptor {
	idx := r.idx.Load()
	if idx == nil {
		return []*descriptor.Descriptor{}
	}
	if ds, ok := idx.byKind[k]; ok {
		return slices.Clone(ds)
	}
	return []*descriptor.Descriptor{}
}

// QueryAny returns the descriptors carrying at least one of kinds, each
// once.
func (r *Registry) QueryAny(kinds ...apis.Kind) []*descriptor.Descriptor {
	idx := r.idx.Load()
	if idx == nil {
		return []*descriptor.Descriptor{}
	}
	return union(idx, kinds)
}

// Enumerate returns every indexed descriptor once. The order is unspecified.
func (r *Registry) Enumerate() []*descriptor.Descriptor {
	idx := r.idx.Load()
	if idx == nil {
		return []*descriptor.Descriptor{}
	}
	return slices.Clone(idx.all)
}

// Kinds returns the indexed kinds, sorted.
func (r *Registry) Kinds() []apis.Kind {
	idx := r.idx.Load()
	if idx == nil {
		return []apis.Kind{}
	}
	out := make([]apis.Kind, 0, len(idx.byKind))
	for k := range idx.byKind {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// union collects the descriptors under kinds into a set.
func union(idx *index, kinds []apis.Kind) []*descriptor.Descriptor {
	set := descriptor.NewSet()
	for _, k := range kinds {
		for _, d := range idx.byKind[k] {
			set.Add(d)
		}
	}
	return set.Slice()
}
