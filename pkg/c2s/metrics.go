// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package c2s

import "github.com/prometheus/client_golang/prometheus"

var (
	c2sConnectionRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "traffic",
			Subsystem: "c2s",
			Name:      "connection_registered",
			Help:      "The total number of register operations.",
		},
	)
	c2sConnectionUnregistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "traffic",
			Subsystem: "c2s",
			Name:      "connection_unregistered",
			Help:      "The total number of unregister operations.",
		},
	)
	c2sOutgoingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "traffic",
			Subsystem: "c2s",
			Name:      "outgoing_requests_total",
			Help:      "The total number of outgoing stanza requests.",
		},
		[]string{"name", "type"},
	)
	c2sIncomingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "traffic",
			Subsystem: "c2s",
			Name:      "incoming_requests_total",
			Help:      "The total number of incoming stanza requests.",
		},
		[]string{"name", "type"},
	)
	c2sIncomingRequestDurationBucket = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "traffic",
			Subsystem: "c2s",
			Name:      "incoming_requests_duration_bucket",
			Help:      "Bucketed histogram of incoming stanza requests duration.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 24),
		},
		[]string{"name", "type"},
	)
	c2sIncomingTotalConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "traffic",
			Subsystem: "c2s",
			Name:      "incoming_total_connections",
			Help:      "Total incoming C2S connections.",
		},
	)
)

func init() {
	prometheus.MustRegister(c2sConnectionRegistered)
	prometheus.MustRegister(c2sConnectionUnregistered)
	prometheus.MustRegister(c2sOutgoingRequests)
	prometheus.MustRegister(c2sIncomingRequests)
	prometheus.MustRegister(c2sIncomingRequestDurationBucket)
	prometheus.MustRegister(c2sIncomingTotalConnections)
}

func reportOutgoingRequest(name, typ string) {
	c2sOutgoingRequests.WithLabelValues(name, typ).Inc()
}

func reportIncomingRequest(name, typ string, durationInSecs float64) {
	c2sIncomingRequests.WithLabelValues(name, typ).Inc()
	c2sIncomingRequestDurationBucket.WithLabelValues(name, typ).Observe(durationInSecs)
}

func reportConnectionRegistered(totalConns int) {
	c2sConnectionRegistered.Inc()
	c2sIncomingTotalConnections.Set(float64(totalConns))
}

func reportConnectionUnregistered(totalConns int) {
	c2sConnectionUnregistered.Inc()
	c2sIncomingTotalConnections.Set(float64(totalConns))
}
