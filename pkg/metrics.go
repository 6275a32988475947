// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
)

var (
	toolCallsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcp",
			Name:      "tool_calls_total",
			Help:      "Counts tool invocations by tool name and result.",
		},
		[]string{"tool", "result"},
	)
	promptGetsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcp",
			Name:      "prompt_gets_total",
			Help:      "Counts prompt renderings by prompt name and result.",
		},
		[]string{"prompt", "result"},
	)
	resourceReadsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcp",
			Name:      "resource_reads_total",
			Help:      "Counts resource reads by uri and result.",
		},
		[]string{"uri", "result"},
	)
	sseSessionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mcp",
			Name:      "sse_sessions",
			Help:      "Number of open SSE sessions.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		toolCallsCounter,
		promptGetsCounter,
		resourceReadsCounter,
		sseSessionsGauge,
	)
}

//counterfeiter:generate -o ../mocks/metrics.go --fake-name Metrics . Metrics
type Metrics interface {
	ToolCall(name string, result string)
	PromptGet(name string, result string)
	ResourceRead(uri string, result string)
	SSESessions(count int)
}

func NewMetrics() Metrics {
	return &metrics{}
}

type metrics struct{}

func (m *metrics) ToolCall(name string, result string) {
	toolCallsCounter.With(prometheus.Labels{"tool": name, "result": result}).Inc()
}

func (m *metrics) PromptGet(name string, result string) {
	promptGetsCounter.With(prometheus.Labels{"prompt": name, "result": result}).Inc()
}

func (m *metrics) ResourceRead(uri string, result string) {
	resourceReadsCounter.With(prometheus.Labels{"uri": uri, "result": result}).Inc()
}

func (m *metrics) SSESessions(count int) {
	sseSessionsGauge.Set(float64(count))
}
