// This file is part of ratecounter.
//
// ratecounter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ratecounter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ratecounter.  If not, see <https://www.gnu.org/licenses/>.

// Package export publishes the state of a rate counter as prometheus metrics.
//
// The counter types are not safe for concurrent use and so the exporter never
// reads a counter itself. The goroutine that owns the counter calls Publish()
// whenever the metrics should be brought up to date, which is usually much
// less often than the counter is updated.
package export

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jetsetilly/ratecounter/display"
)

// Exporter holds the gauges for a single rate counter.
type Exporter struct {
	rate      prometheus.Gauge
	interval  prometheus.Gauge
	window    prometheus.Gauge
	published prometheus.Counter
}

// NewExporter creates the gauges and registers them with the registerer.
func NewExporter(namespace string, reg prometheus.Registerer) (*Exporter, error) {
	e := &Exporter{
		rate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rate_hz",
			Help:      "Most recent rate measured by the counter in cycles per second",
		}),
		interval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interval_seconds",
			Help:      "Most recent interval between updates of the counter",
		}),
		window: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_size",
			Help:      "Number of intervals the rate is calculated over",
		}),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_count",
			Help:      "Number of times the metrics have been published",
		}),
	}

	err := errors.Join(
		reg.Register(e.rate),
		reg.Register(e.interval),
		reg.Register(e.window),
		reg.Register(e.published),
	)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Publish copies the current state of the counter to the gauges. Must be
// called from the goroutine that updates the counter.
func (e *Exporter) Publish(c display.Counter) {
	e.rate.Set(c.Rate())
	e.interval.Set(c.Measure().Seconds())
	e.window.Set(float64(c.Cycles()))
	e.published.Inc()
}

// Handler returns an HTTP handler serving the metrics collected by the
// gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
