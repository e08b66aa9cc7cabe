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

package driver_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/discover/apis"
	"dirpx.dev/discover/collector"
	"dirpx.dev/discover/config"
	"dirpx.dev/discover/descriptor"
	"dirpx.dev/discover/driver"
	fx "dirpx.dev/discover/internal/fixture"
	"dirpx.dev/discover/metrics"
	"dirpx.dev/discover/registry"
)

func subjects(ds []*descriptor.Descriptor) []apis.TypeID {
	out := make([]apis.TypeID, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Subject())
	}
	return out
}

func newDriver(t *testing.T, opts ...driver.Option) (*driver.Driver, []apis.TypeID) {
	t.Helper()
	p := fx.World()
	d, err := driver.New(collector.New(p, config.DefaultConfig()), registry.New(), opts...)
	require.NoError(t, err)
	return d, p.Types()
}

func TestNew_Errors(t *testing.T) {
	_, err := driver.New(nil, registry.New())
	assert.ErrorIs(t, err, driver.ErrNilCollector)

	_, err = driver.New(collector.New(fx.World(), config.DefaultConfig()), nil)
	assert.ErrorIs(t, err, driver.ErrNilRegistry)
}

func TestObserve(t *testing.T) {
	d, _ := newDriver(t)

	desc, kept := d.Observe(fx.Plain)
	assert.False(t, kept)
	assert.Equal(t, fx.Plain, desc.Subject())

	// The marker arrives through the app.Service stereotype.
	_, kept = d.Observe(fx.Orders)
	assert.True(t, kept)

	_, kept = d.Observe(fx.Internal)
	assert.True(t, kept)

	assert.Equal(t, []apis.TypeID{fx.Orders, fx.Internal}, subjects(d.Kept()))
	assert.Equal(t, []apis.TypeID{fx.Internal}, d.Vetoed())
}

func TestScan_LiveContextPopulatesRegistry(t *testing.T) {
	d, types := newDriver(t)

	require.NoError(t, d.Scan(context.Background(), types))
	require.Len(t, d.Kept(), 3)

	reg, err := d.Finish()
	require.NoError(t, err)
	assert.Equal(t, []apis.TypeID{fx.Orders, fx.Internal, fx.Direct}, subjects(reg.Query(fx.Marker)))
}

// cancelingCollector cancels a context once it is asked about a given type.
type cancelingCollector struct {
	apis.Collector
	on     apis.TypeID
	cancel context.CancelFunc
}

func (c cancelingCollector) Collect(t apis.TypeID) []apis.Instance {
	if t == c.on {
		c.cancel()
	}
	return c.Collector.Collect(t)
}

func TestScan_CanceledMidwayRecordsNothing(t *testing.T) {
	p := fx.World()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := cancelingCollector{
		Collector: collector.New(p, config.DefaultConfig()),
		on:        fx.Internal,
		cancel:    cancel,
	}
	d, err := driver.New(c, registry.New(), driver.WithConcurrency(1))
	require.NoError(t, err)

	// Orders is described before Internal cancels the scan.
	err = d.Scan(ctx, p.Types())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.Kept())
	assert.Empty(t, d.Vetoed())

	reg, err := d.Finish()
	require.NoError(t, err)
	assert.Empty(t, reg.Query(fx.Marker))
}

func TestScan_KeepsInputOrder(t *testing.T) {
	for _, n := range []int{1, 3, 64} {
		d, types := newDriver(t, driver.WithConcurrency(n))

		require.NoError(t, d.Scan(context.Background(), types))

		assert.Equal(t, []apis.TypeID{fx.Orders, fx.Internal, fx.Direct}, subjects(d.Kept()), "concurrency %d", n)
		assert.Equal(t, []apis.TypeID{fx.Internal}, d.Vetoed())
	}
}

func TestScan_Canceled(t *testing.T) {
	d, types := newDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Scan(ctx, types)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.Kept())
}

func TestFinish(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d, types := newDriver(t, driver.WithLogger(zap.New(core)))
	require.NoError(t, d.Scan(context.Background(), types))

	reg, err := d.Finish()
	require.NoError(t, err)
	require.True(t, reg.Sealed())

	assert.Equal(t, []apis.TypeID{fx.Orders, fx.Internal, fx.Direct}, subjects(reg.Query(fx.Marker)))
	assert.Equal(t, []apis.TypeID{fx.Orders}, subjects(reg.Query(fx.Route)))
	assert.Empty(t, reg.Query("app.Unknown"))

	assert.Equal(t, 3, logs.FilterMessage("discovered").Len())
	assert.Equal(t, 1, logs.FilterMessage("all discovered types added").Len())

	_, err = d.Finish()
	assert.ErrorIs(t, err, registry.ErrAlreadySealed)
}

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	d, types := newDriver(t, driver.WithMetrics(m))

	require.NoError(t, d.Scan(context.Background(), types))

	assert.Equal(t, float64(len(types)), testutil.ToFloat64(m.DescriptorsBuilt.WithLabelValues(metrics.ModeDiscovered)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TypesVetoed))
}
