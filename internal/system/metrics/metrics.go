/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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


package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeEmpty   = "empty"
)

var (
	registry = prometheus.NewRegistry()

	UnlockAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gdpr_notice",
		Name:      "unlock_attempts_total",
		Help:      "Access code unlock attempts by outcome.",
	}, []string{"outcome"})

	ProgressLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gdpr_notice",
		Name:      "progress_loads_total",
		Help:      "Saved progress loads by backend and outcome.",
	}, []string{"driver", "outcome"})

	ProgressSaves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gdpr_notice",
		Name:      "progress_saves_total",
		Help:      "Progress saves by backend and outcome.",
	}, []string{"driver", "outcome"})

	Exports = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gdpr_notice",
		Name:      "exports_total",
		Help:      "Generated exports and notices by format.",
	}, []string{"format"})

	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gdpr_notice",
		Name:      "active_sessions",
		Help:      "Sessions opened and not yet reset.",
	})
)

func init() {
	registry.MustRegister(
		UnlockAttempts,
		ProgressLoads,
		ProgressSaves,
		Exports,
		ActiveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Registry exposes the registry the service metrics are registered with.
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registered metrics in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
