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

package queue

import "github.com/prometheus/client_golang/prometheus"

var (
	dispatched = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "traffic",
		Subsystem: "queue",
		Name:      "dispatched_total",
		Help:      "The total number of dispatched queue entries.",
	})
	lockContended = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "traffic",
		Subsystem: "queue",
		Name:      "lock_contended_total",
		Help:      "The total number of drain attempts skipped because another worker held the queue lock.",
	})
	drainErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "traffic",
		Subsystem: "queue",
		Name:      "drain_errors_total",
		Help:      "The total number of interrupted queue drains.",
	})
)

func init() {
	prometheus.MustRegister(dispatched, lockContended, drainErrors)
}
