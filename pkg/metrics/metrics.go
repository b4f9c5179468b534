package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	dentamatch = "dentamatch"

	jobsCreatedTotal       = "jobs_created_total"
	jobsDeletedTotal       = "jobs_deleted_total"
	applicationsTotal      = "job_applications_total"
	invitationsTotal       = "job_invitations_total"
	statusTransitionsTotal = "job_status_transitions_total"

	// Labels
	jobTypeLabel  = "job_type"
	toStatusLabel = "to_status"
	outcomeLabel  = "outcome"
)

var jobsCreatedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: dentamatch,
		Name:      jobsCreatedTotal,
		Help:      "number of job postings created, by job type",
	},
	[]string{jobTypeLabel},
)

var jobsDeletedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: dentamatch,
		Name:      jobsDeletedTotal,
		Help:      "number of job postings deleted, by outcome",
	},
	[]string{outcomeLabel},
)

var applicationsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: dentamatch,
		Name:      applicationsTotal,
		Help:      "number of job applications received",
	},
)

var invitationsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: dentamatch,
		Name:      invitationsTotal,
		Help:      "number of job invitations issued",
	},
)

var statusTransitionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: dentamatch,
		Name:      statusTransitionsTotal,
		Help:      "number of job status transitions, by target status",
	},
	[]string{toStatusLabel},
)

func IncreaseJobsCreatedMetric(jobType string) {
	jobsCreatedTotalMetric.With(prometheus.Labels{jobTypeLabel: jobType}).Inc()
}

func IncreaseJobsDeletedMetric(outcome string) {
	jobsDeletedTotalMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

func IncreaseApplicationsMetric() {
	applicationsTotalMetric.Inc()
}

func IncreaseInvitationsMetric() {
	invitationsTotalMetric.Inc()
}

func IncreaseStatusTransitionsMetric(toStatus string) {
	statusTransitionsTotalMetric.With(prometheus.Labels{toStatusLabel: toStatus}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(jobsCreatedTotalMetric)
	prometheus.MustRegister(jobsDeletedTotalMetric)
	prometheus.MustRegister(applicationsTotalMetric)
	prometheus.MustRegister(invitationsTotalMetric)
	prometheus.MustRegister(statusTransitionsTotalMetric)
}
