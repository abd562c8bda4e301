package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shift_service",
			Name:      "reservation_created_total",
			Help:      "Count of shift reservations created.",
		},
	)

	reservationConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shift_service",
			Name:      "reservation_conflict_total",
			Help:      "Count of reservation attempts rejected due to a booking conflict.",
		},
	)

	reservationCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shift_service",
			Name:      "reservation_cancelled_total",
			Help:      "Count of shift reservations cancelled by drivers.",
		},
	)
)

// RegisterReservationMetrics registers the reservation counters (idempotent).
func RegisterReservationMetrics() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationConflict, reservationCancelled)
	})
}

// IncReservationCreated increments the created-reservations counter.
func IncReservationCreated() { reservationCreated.Inc() }

// IncReservationConflict increments the conflict-rejections counter.
func IncReservationConflict() { reservationConflict.Inc() }

// IncReservationCancelled increments the cancelled-reservations counter.
func IncReservationCancelled() { reservationCancelled.Inc() }
