package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	vdiPlanner = "vdi_planner"

	assessmentsTotal = "assessments_total"
	assessmentUsers  = "assessment_users"

	// Labels
	assessmentStatusLabel = "status"
)

// Assessment outcomes.
const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"
)

var assessmentsTotalLabels = []string{
	assessmentStatusLabel,
}

/**
* Metrics definition
**/
var assessmentsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: vdiPlanner,
		Name:      assessmentsTotal,
		Help:      "number of assessments run, partitioned by outcome",
	},
	assessmentsTotalLabels,
)

var assessmentUsersMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: vdiPlanner,
		Name:      assessmentUsers,
		Help:      "total users of each successful assessment",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	},
)

func IncreaseAssessmentsTotalMetric(status string) {
	labels := prometheus.Labels{
		assessmentStatusLabel: status,
	}
	assessmentsTotalMetric.With(labels).Inc()
}

func ObserveAssessmentUsers(totalUsers int) {
	assessmentUsersMetric.Observe(float64(totalUsers))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(assessmentsTotalMetric)
	prometheus.MustRegister(assessmentUsersMetric)
}
