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

package router

import "github.com/prometheus/client_golang/prometheus"

const (
	routeTarget   = "route"
	queueTarget   = "queue"
	forwardTarget = "forward"
	userTarget    = "user"
	serverTarget  = "server"
)

var routedStanzas = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "traffic",
		Subsystem: "router",
		Name:      "stanzas_total",
		Help:      "The total number of routed stanzas by target.",
	},
	[]string{"name", "target"},
)

func init() {
	prometheus.MustRegister(routedStanzas)
}

func reportRouted(name, target string) {
	routedStanzas.WithLabelValues(name, target).Inc()
}
