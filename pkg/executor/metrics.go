/*
Copyright 2026 Codenotary Inc. All rights reserved.

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

package executor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

type Metrics interface {
	ObserveStatement(op string, elapsed time.Duration, err error)
	AddRowsAffected(op string, n int64)
	IncSkipped(op string)
}

var (
	metricsStatements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sqlbrowser_statements_total",
		Help: "Number of statements executed, by operation and result",
	}, []string{"operation", "result"})

	metricsStatementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sqlbrowser_statement_duration_seconds",
		Help:    "Time spent waiting for the server to answer a statement",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	metricsRowsAffected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sqlbrowser_rows_affected_total",
		Help: "Number of rows changed by write statements",
	}, []string{"operation"})

	metricsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sqlbrowser_prompt_skipped_total",
		Help: "Prompt driven operations that ended without executing a statement",
	}, []string{"operation"})
)

var _ Metrics = &prometheusMetrics{}

type prometheusMetrics struct{}

func NewPrometheusMetrics() Metrics {
	return &prometheusMetrics{}
}

func (m *prometheusMetrics) ObserveStatement(op string, elapsed time.Duration, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}

	metricsStatements.WithLabelValues(op, result).Inc()
	metricsStatementDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *prometheusMetrics) AddRowsAffected(op string, n int64) {
	if n > 0 {
		metricsRowsAffected.WithLabelValues(op).Add(float64(n))
	}
}

func (m *prometheusMetrics) IncSkipped(op string) {
	metricsSkipped.WithLabelValues(op).Inc()
}

type nopMetrics struct{}

func NewNopMetrics() Metrics {
	return nopMetrics{}
}

func (nopMetrics) ObserveStatement(string, time.Duration, error) {}
func (nopMetrics) AddRowsAffected(string, int64)                 {}
func (nopMetrics) IncSkipped(string)                             {}
