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

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mode labels for DescriptorsBuilt.
const (
	ModeDiscovered = "discovered"
	ModeMarked     = "marked"
)

// Metrics provides observability for discovery and sealing.
type Metrics struct {
	DescriptorsBuilt   *prometheus.CounterVec
	TypesVetoed        prometheus.Counter
	SealRejected       prometheus.Counter
	IndexedKinds       prometheus.Gauge
	IndexedDescriptors prometheus.Gauge
	SealDuration       prometheus.Histogram
}

// New creates a Metrics instance registered with reg. A nil reg uses the
// default prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		DescriptorsBuilt: f.NewCounterVec(prometheus.CounterOpts{
			Name: "discover_descriptors_built_total",
			Help: "Total number of type descriptors built, by construction mode",
		}, []string{"mode"}),
		TypesVetoed: f.NewCounter(prometheus.CounterOpts{
			Name: "discover_types_vetoed_total",
			Help: "Total number of discovered types whose marker requests exclusion",
		}),
		SealRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "discover_seal_rejected_total",
			Help: "Total number of seal attempts on an already sealed registry",
		}),
		IndexedKinds: f.NewGauge(prometheus.GaugeOpts{
			Name: "discover_indexed_kinds",
			Help: "Number of annotation kinds in the sealed index",
		}),
		IndexedDescriptors: f.NewGauge(prometheus.GaugeOpts{
			Name: "discover_indexed_descriptors",
			Help: "Number of distinct descriptors in the sealed index",
		}),
		SealDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "discover_seal_duration_seconds",
			Help:    "Duration of building the sealed index",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// IncrementBuilt records one descriptor built in the given mode.
func (m *Metrics) IncrementBuilt(mode string) {
	m.DescriptorsBuilt.WithLabelValues(mode).Inc()
}

// IncrementVetoed records one excluded type.
func (m *Metrics) IncrementVetoed() {
	m.TypesVetoed.Inc()
}

// IncrementSealRejected records one rejected seal.
func (m *Metrics) IncrementSealRejected() {
	m.SealRejected.Inc()
}

// ObserveSeal records the shape of the sealed index and how long it took
// to build. Call with time.Now() taken before building.
func (m *Metrics) ObserveSeal(start time.Time, kinds, descriptors int) {
	m.SealDuration.Observe(time.Since(start).Seconds())
	m.IndexedKinds.Set(float64(kinds))
	m.IndexedDescriptors.Set(float64(descriptors))
}
