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

package discover

import (
	"context"

	"go.uber.org/zap"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/collector"
	"dirpx.dev/discover/config"
	"dirpx.dev/discover/descriptor"
	"dirpx.dev/discover/driver"
	"dirpx.dev/discover/metrics"
	"dirpx.dev/discover/registry"
)

// New constructs an Engine over p.
func New(p apis.Provider, opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.c = collector.New(p, config.NewConfig(e.cfgOpts...))
	return e
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig applies configuration options on top of the defaults.
func WithConfig(opts ...config.Option) Option {
	return func(e *Engine) {
		e.cfgOpts = append(e.cfgOpts, opts...)
	}
}

// WithLogger sets the logger handed to registries and drivers.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics enables metrics on registries and drivers.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.m = m
	}
}

// Engine ties a provider, a configuration and a collector together. It
// holds no discovery state itself: every Discover or Of call produces a
// new, independently owned Registry.
type Engine struct {
	cfgOpts []config.Option
	c       *collector.Collector
	log     *zap.Logger
	m       *metrics.Metrics
}

// Config returns the effective configuration.
func (e *Engine) Config() apis.Config {
	return e.c.Config()
}

// Collector returns the engine's collector.
func (e *Engine) Collector() *collector.Collector {
	return e.c
}

// Collect returns the raw observations for t.
func (e *Engine) Collect(t apis.TypeID) []apis.Instance {
	return e.c.Collect(t)
}

// Describe builds the descriptor of t.
func (e *Engine) Describe(t apis.TypeID) *descriptor.Descriptor {
	return descriptor.Of(e.c, t)
}

// DescribeMarked builds the force-marked descriptor of t.
func (e *Engine) DescribeMarked(t apis.TypeID) *descriptor.Descriptor {
	return descriptor.OfMarked(e.c, t)
}

// Driver returns a new driver bound to a new registry.
func (e *Engine) Driver(opts ...driver.Option) (*driver.Driver, error) {
	reg := registry.New(e.registryOptions()...)
	base := []driver.Option{driver.WithLogger(e.log.Named("driver"))}
	if e.m != nil {
		base = append(base, driver.WithMetrics(e.m))
	}
	return driver.New(e.c, reg, append(base, opts...)...)
}

// Discover scans types, keeping those carrying the discovery marker, and
// returns the sealed registry together with the driver that built it.
func (e *Engine) Discover(ctx context.Context, types []apis.TypeID, opts ...driver.Option) (*registry.Registry, *driver.Driver, error) {
	d, err := e.Driver(opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Scan(ctx, types); err != nil {
		return nil, nil, err
	}
	reg, err := d.Finish()
	if err != nil {
		return nil, nil, err
	}
	return reg, d, nil
}

// Of registers types without discovery: each gets a force-marked
// descriptor and the registry is sealed immediately.
func (e *Engine) Of(types []apis.TypeID) *registry.Registry {
	return registry.Of(e.c, types, e.registryOptions()...)
}

func (e *Engine) registryOptions() []registry.Option {
	opts := []registry.Option{registry.WithLogger(e.log.Named("registry"))}
	if e.m != nil {
		opts = append(opts, registry.WithMetrics(e.m))
	}
	return opts
}
