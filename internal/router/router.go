package router

import (
	"net/http"
	"time"

	_ "vet-clinic/docs"
	mem "vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/orders"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/promotions"
	"vet-clinic/internal/domain/summary"
	"vet-clinic/internal/domain/vets"
	"vet-clinic/internal/domain/visits"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log     logger.Logger
	Metrics *metrics.Metrics

	// Opcional: si viene nil se usa un store vacío.
	Store *mem.Store

	// Tabla de promociones; nil usa la de fábrica.
	Promotions []promotions.Promotion

	RefreshDelay time.Duration
}

// Router es el http.Handler de la API. Close detiene el refresco del
// resumen que pudiera estar pendiente.
type Router struct {
	http.Handler
	refresher *summary.Refresher
}

func (r *Router) Close() {
	r.refresher.Close()
}

func NewRouter(opts Options) *Router {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	loop := middleware.NewEventLoop()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	ownersSvc := owners.NewService(store.Owners, log)
	vetsSvc := vets.NewService(store.Vets)
	medsSvc := medications.NewService(store.Medications, log, m)
	ordersSvc := orders.NewService(store.Orders, store.Medications, log, m)
	promosSvc := promotions.NewService(opts.Promotions, log)
	visitsSvc := visits.NewService(store.Visits, log, m)

	refresher := summary.NewRefresher(summary.Options{
		Delay: opts.RefreshDelay,
		Compute: summary.Source{
			Owners: ownersSvc,
			Visits: visitsSvc,
			Vets:   vetsSvc,
		}.Compute,
		Loop:    loop,
		Log:     log,
		Metrics: m,
	})

	// Rutas de dominio: una acción a la vez.
	r.Group(func(dr chi.Router) {
		dr.Use(loop.Middleware)

		owners.RegisterRoutes(dr, ownersSvc)
		vets.RegisterRoutes(dr, vetsSvc)
		medications.RegisterRoutes(dr, medsSvc)
		orders.RegisterRoutes(dr, ordersSvc)
		promotions.RegisterRoutes(dr, promosSvc)
		visits.RegisterRoutes(dr, visitsSvc)
		summary.RegisterRoutes(dr, refresher)
	})

	return &Router{Handler: r, refresher: refresher}
}
