package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the desk's Prometheus collectors. It satisfies
// reservation.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	BookingsCreated   *prometheus.CounterVec
	BookingsRejected  *prometheus.CounterVec
	BookingsCancelled *prometheus.CounterVec
	ActiveBookings    prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_bookings_created_total",
			Help: "Bookings created, by room type",
		}, []string{"room_type"}),

		BookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_bookings_rejected_total",
			Help: "Booking requests rejected, by reason",
		}, []string{"reason"}),

		BookingsCancelled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_bookings_cancelled_total",
			Help: "Bookings cancelled, by room type",
		}, []string{"room_type"}),

		ActiveBookings: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hotel_bookings_active",
			Help: "Bookings currently in the ledger",
		}),
	}
}

func (m *Metrics) BookingCreated(roomType string) {
	m.BookingsCreated.WithLabelValues(roomType).Inc()
}

func (m *Metrics) BookingRejected(reason string) {
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingCancelled(roomType string) {
	m.BookingsCancelled.WithLabelValues(roomType).Inc()
}

func (m *Metrics) LedgerSize(n int) {
	m.ActiveBookings.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
