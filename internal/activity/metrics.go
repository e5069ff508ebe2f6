package activity

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/briangreenhill/ftracker/internal/training"
)

var (
	summariesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "training",
		Name:      "summaries_total",
		Help:      "Number of training packages summarized, by training type.",
	}, []string{"training_type"})
	rejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "training",
		Name:      "rejected_packages_total",
		Help:      "Number of training packages rejected, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(summariesTotal, rejectedTotal)
}

func recordSummary(info training.InfoMessage) {
	summariesTotal.WithLabelValues(info.TrainingType).Inc()
}

func recordRejected(err error) {
	rejectedTotal.WithLabelValues(errorCode(err)).Inc()
}

// errorCode maps a build failure to a stable machine-readable reason.
func errorCode(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutType):
		return "unknown_workout_type"
	case errors.Is(err, training.ErrArity):
		return "arity_mismatch"
	case errors.Is(err, training.ErrInvalidDuration):
		return "invalid_duration"
	case errors.Is(err, training.ErrInvalidDimension):
		return "invalid_dimension"
	case errors.Is(err, training.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "server_error"
	}
}
