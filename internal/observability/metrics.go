package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	callbackEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridlink",
			Subsystem: "callback",
			Name:      "events_total",
			Help:      "Callback events by kind and delivery outcome.",
		},
		[]string{"kind", "outcome"},
	)
	ticketsIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gridlink",
			Subsystem: "auth",
			Name:      "tickets_issued_total",
			Help:      "Authentication tickets issued locally.",
		},
	)
	ticketsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gridlink",
			Subsystem: "auth",
			Name:      "tickets_cancelled_total",
			Help:      "Authentication tickets cancelled locally.",
		},
	)
	sessionBegins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridlink",
			Subsystem: "auth",
			Name:      "session_begins_total",
			Help:      "Begin-session requests by synchronous outcome.",
		},
		[]string{"outcome"},
	)
	voiceReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridlink",
			Subsystem: "voice",
			Name:      "reads_total",
			Help:      "Voice buffer reads by result.",
		},
		[]string{"result"},
	)
	voiceReadBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gridlink",
			Subsystem: "voice",
			Name:      "read_bytes_total",
			Help:      "Compressed voice bytes read from the capture buffer.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			callbackEvents,
			ticketsIssued,
			ticketsCancelled,
			sessionBegins,
			voiceReads,
			voiceReadBytes,
		)
	})
}

func RecordCallbackEvent(kind, outcome string) {
	RegisterMetrics()
	callbackEvents.WithLabelValues(kind, outcome).Inc()
}

func RecordTicketIssued() {
	RegisterMetrics()
	ticketsIssued.Inc()
}

func RecordTicketCancelled() {
	RegisterMetrics()
	ticketsCancelled.Inc()
}

func RecordSessionBegin(outcome string) {
	RegisterMetrics()
	sessionBegins.WithLabelValues(outcome).Inc()
}

func RecordVoiceRead(result string, bytes int) {
	RegisterMetrics()
	voiceReads.WithLabelValues(result).Inc()
	if bytes > 0 {
		voiceReadBytes.Add(float64(bytes))
	}
}
