// SPDX-License-Identifier: GPL-3.0-or-later

// Package stats holds the responder's operational counters.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts datagrams as they move through the responder.
type Metrics struct {
	// QueriesReceived counts datagrams read from the UDP socket.
	QueriesReceived prometheus.Counter

	// ResponsesSent counts responses written back to peers.
	ResponsesSent prometheus.Counter

	// MalformedDropped counts datagrams dropped because the header
	// or question failed to decode.
	MalformedDropped prometheus.Counter

	// SendFailures counts responses that could not be written.
	SendFailures prometheus.Counter
}

// New creates the responder counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "dnswire_queries_received_total",
			Help: "Datagrams read from the UDP socket.",
		}),
		ResponsesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "dnswire_responses_sent_total",
			Help: "Responses written back to peers.",
		}),
		MalformedDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "dnswire_malformed_dropped_total",
			Help: "Datagrams dropped because they failed to decode.",
		}),
		SendFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dnswire_send_failures_total",
			Help: "Responses that could not be written.",
		}),
	}
}
