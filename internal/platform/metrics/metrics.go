package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HoursSimulated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "voyage_hours_simulated_total",
		Help: "Simulated hours stepped across all runs",
	})

	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_vehicle_transitions_total",
		Help: "Vehicle lifecycle transitions, by the state entered",
	}, []string{"state"})

	RunDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:        "voyage_run_duration_seconds",
		Help:        "Wall-clock time spent running a simulation to completion",
		ConstLabels: prometheus.Labels{"endpoint_type": "simulations"},
	})
)

func init() {
	prometheus.MustRegister(HoursSimulated, Transitions, RunDuration)
}
