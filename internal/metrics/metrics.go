// Package metrics exposes Prometheus counters for the marketplace lifecycle.
// Scraped from GET /metrics on the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solosuite_jobs_created_total",
		Help: "Job postings created.",
	})

	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solosuite_applications_submitted_total",
		Help: "Job applications submitted by providers.",
	})

	ApplicationsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solosuite_applications_decided_total",
		Help: "Applications accepted or rejected by clients.",
	}, []string{"status"})

	JobsFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solosuite_jobs_finalized_total",
		Help: "Jobs moved to completed by the engagement finalizer.",
	})

	ReviewsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solosuite_reviews_submitted_total",
		Help: "Reviews accepted by the review gate.",
	})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solosuite_emails_sent_total",
		Help: "Transactional emails handed to the mail provider.",
	}, []string{"template"})

	EmailFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solosuite_email_failures_total",
		Help: "Transactional email sends that failed (best-effort, logged only).",
	})
)
