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

package s2s

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	s2sOutgoingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "traffic",
			Subsystem: "s2s",
			Name:      "outgoing_requests_total",
			Help:      "The total number of stanzas forwarded to the federation gateway.",
		},
		[]string{"name", "success"},
	)
	s2sIncomingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "traffic",
			Subsystem: "s2s",
			Name:      "incoming_requests_total",
			Help:      "The total number of stanzas received from the federation gateway.",
		},
		[]string{"name", "success"},
	)
)

func init() {
	prometheus.MustRegister(s2sOutgoingRequests)
	prometheus.MustRegister(s2sIncomingRequests)
}

func reportOutgoingRequest(name string, success bool) {
	s2sOutgoingRequests.WithLabelValues(name, strconv.FormatBool(success)).Inc()
}

func reportIncomingRequest(name string, success bool) {
	s2sIncomingRequests.WithLabelValues(name, strconv.FormatBool(success)).Inc()
}
