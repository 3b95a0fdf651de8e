package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics usa un registry propio (no el global) para que cada router
// construido en tests tenga sus contadores aislados.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	visitsRegistered prometheus.Counter
	ordersProcessed  *prometheus.CounterVec
	unitsSold        prometheus.Counter
	summaryRefreshes *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetclinic",
			Name:      "http_requests_total",
			Help:      "Requests HTTP por ruta y código.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vetclinic",
			Name:      "http_request_duration_seconds",
			Help:      "Duración de requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		visitsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vetclinic",
			Name:      "visits_registered_total",
			Help:      "Consultas registradas.",
		}),
		ordersProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetclinic",
			Name:      "orders_processed_total",
			Help:      "Intentos de procesar pedidos por resultado.",
		}, []string{"result"}),
		unitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vetclinic",
			Name:      "medication_units_sold_total",
			Help:      "Unidades de medicamento descontadas del stock.",
		}),
		summaryRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetclinic",
			Name:      "summary_refreshes_total",
			Help:      "Refrescos del resumen por resultado.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.visitsRegistered,
		m.ordersProcessed,
		m.unitsSold,
		m.summaryRefreshes,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Los métodos aceptan receptor nil para que los services no dependan de
// tener métricas configuradas.

func (m *Metrics) VisitRegistered() {
	if m == nil {
		return
	}
	m.visitsRegistered.Inc()
}

func (m *Metrics) OrderProcessed(ok bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if ok {
		result = "processed"
	}
	m.ordersProcessed.WithLabelValues(result).Inc()
}

func (m *Metrics) UnitsSold(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.unitsSold.Add(float64(n))
}

func (m *Metrics) SummaryRefreshed(outcome string) {
	if m == nil {
		return
	}
	m.summaryRefreshes.WithLabelValues(outcome).Inc()
}

// Middleware registra cada request usando el patrón de ruta de chi
// (no la URL cruda) para acotar la cardinalidad.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
