/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics defines the Prometheus collectors exposed by the server.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "teamsauth"

// Collectors groups the server's metrics.
type Collectors struct {
	// HTTPRequests counts handled requests.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration observes request latency.
	HTTPDuration *prometheus.HistogramVec
	// FlowFailures counts accepted diagnostic reports by failure kind.
	FlowFailures *prometheus.CounterVec
}

var (
	registry   *prometheus.Registry
	collection *Collectors
	once       sync.Once
)

// NewCollectors creates the collectors and registers them with reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	labels := []string{"handler", "method", "path", "status", "user_agent"}
	c := &Collectors{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP requests handled.",
		}, labels),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time taken to handle HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
		FlowFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_failures_total",
			Help:      "Number of authentication flow failures reported by frames.",
		}, []string{"kind"}),
	}
	reg.MustRegister(c.HTTPRequests, c.HTTPDuration, c.FlowFailures)
	return c
}

func initialize() {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collection = NewCollectors(registry)
	})
}

// GetCollectors returns the server wide collectors.
func GetCollectors() *Collectors {
	initialize()
	return collection
}

// Handler returns the /metrics handler for the server wide registry.
func Handler() http.Handler {
	initialize()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
