package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	QuotesPriced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cfp",
		Name:      "quotes_priced_total",
		Help:      "Quotes assembled, by template.",
	}, []string{"template"})

	DraftsSaved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cfp",
		Name:      "drafts_saved_total",
		Help:      "Draft saves, by outcome.",
	}, []string{"outcome"})

	AgreementsSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cfp",
		Name:      "agreements_submitted_total",
		Help:      "Agreement submissions, by template and outcome.",
	}, []string{"template", "outcome"})

	ReferenceCollisions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cfp",
		Name:      "contract_reference_collisions_total",
		Help:      "Generated contract references that were already taken.",
	})

	EmailsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cfp",
		Name:      "emails_sent_total",
		Help:      "Confirmation emails, by recipient kind and outcome.",
	}, []string{"recipient", "outcome"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cfp",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// NewRegistry returns a registry holding the service collectors plus the Go
// and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		QuotesPriced,
		DraftsSaved,
		AgreementsSubmitted,
		ReferenceCollisions,
		EmailsSent,
		HTTPRequestDuration,
	)
	return reg
}

func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
