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

package driver

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/descriptor"
	"dirpx.dev/discover/metrics"
	"dirpx.dev/discover/registry"
)

var (
	// ErrNilCollector is returned by New when no collector is given.
	ErrNilCollector = errors.New("discover(driver): nil collector")
	// ErrNilRegistry is returned by New when no registry is given.
	ErrNilRegistry = errors.New("discover(driver): nil registry")
)

// New constructs a Driver that observes candidate types with c and seals
// the kept descriptors into reg.
func New(c apis.Collector, reg *registry.Registry, opts ...Option) (*Driver, error) {
	if c == nil {
		return nil, ErrNilCollector
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	d := &Driver{
		c:     c,
		reg:   reg,
		log:   zap.NewNop(),
		limit: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithMetrics enables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Driver) {
		d.m = m
	}
}

// WithConcurrency bounds the goroutines Scan uses. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.limit = n
		}
	}
}

// Driver is a startup lifecycle driver: it decides which candidate types
// enter the registry and seals it when the scan is over. A type is kept
// when the discovery marker appears anywhere on it, directly or through a
// meta-annotation. Kept types whose marker requests exclusion are still
// indexed but reported by Vetoed, so a host can skip registering them as
// units.
type Driver struct {
	c     apis.Collector
	reg   *registry.Registry
	log   *zap.Logger
	m     *metrics.Metrics
	limit int

	mu     sync.Mutex
	kept   []*descriptor.Descriptor
	vetoed []apis.TypeID
}

// Observe builds the descriptor of t and keeps it if it carries the
// marker. It reports the descriptor and whether it was kept.
func (d *Driver) Observe(t apis.TypeID) (*descriptor.Descriptor, bool) {
	desc, keep := d.describe(t)
	if !keep {
		return desc, false
	}
	d.mu.Lock()
	d.keep(desc)
	d.mu.Unlock()
	return desc, true
}

// Scan observes types in parallel. Kept descriptors are recorded in the
// order of types regardless of completion order. Scan stops early and
// returns the context error when ctx is done; nothing from an aborted
// scan is recorded.
func (d *Driver) Scan(ctx context.Context, types []apis.TypeID) error {
	results := make([]*descriptor.Descriptor, len(types))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.limit)
	for i, t := range types {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if desc, keep := d.describe(t); keep {
				results[i] = desc
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, desc := range results {
		if desc != nil {
			d.keep(desc)
		}
	}
	return nil
}

// Finish seals the registry with every kept descriptor and returns it.
// Only the first call can succeed; later calls propagate
// registry.ErrAlreadySealed unchanged.
func (d *Driver) Finish() (*registry.Registry, error) {
	d.mu.Lock()
	kept := make([]*descriptor.Descriptor, len(d.kept))
	copy(kept, d.kept)
	d.mu.Unlock()

	if err := d.reg.Seal(kept); err != nil {
		return nil, err
	}
	d.log.Debug("all discovered types added", zap.Stringer("registry", d.reg.ID()), zap.Int("types", len(kept)))
	return d.reg, nil
}

// Vetoed returns the subjects of kept types whose marker requests
// exclusion, in the order they were kept.
func (d *Driver) Vetoed() []apis.TypeID {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]apis.TypeID, len(d.vetoed))
	copy(out, d.vetoed)
	return out
}

// Kept returns the kept descriptors in the order they were kept.
func (d *Driver) Kept() []*descriptor.Descriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*descriptor.Descriptor, len(d.kept))
	copy(out, d.kept)
	return out
}

// describe builds the descriptor of t and reports whether it carries the marker.
func (d *Driver) describe(t apis.TypeID) (*descriptor.Descriptor, bool) {
	desc := descriptor.Of(d.c, t)
	if d.m != nil {
		d.m.IncrementBuilt(metrics.ModeDiscovered)
	}
	return desc, desc.Has(d.c.Config().MarkerKind)
}

// keep records desc. Callers hold d.mu.
func (d *Driver) keep(desc *descriptor.Descriptor) {
	d.kept = append(d.kept, desc)
	if desc.IsExcluded() {
		d.vetoed = append(d.vetoed, desc.Subject())
		if d.m != nil {
			d.m.IncrementVetoed()
		}
	}
	d.log.Debug("discovered",
		zap.String("type", string(desc.Subject())),
		zap.Int("kinds", desc.Len()),
		zap.Bool("excluded", desc.IsExcluded()),
	)
}
