package summary

import (
	"context"
	"sync"
	"time"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
)

// ComputeFunc arma el snapshot a partir de los repositorios.
type ComputeFunc func(ctx context.Context) (Snapshot, error)

// Refresher ejecuta "loading=true, esperar, recalcular, loading=false" como
// una tarea cancelable. Un Refresh nuevo o Close cancelan la tarea en curso
// y su continuación se descarta.
type Refresher struct {
	delay   time.Duration
	compute ComputeFunc
	loop    sync.Locker
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	mu     sync.Mutex
	state  State
	gen    uint64
	cancel context.CancelFunc
}

type Options struct {
	Delay   time.Duration
	Compute ComputeFunc

	// Loop, si está, se toma mientras corre Compute para que el recálculo
	// no se intercale con otras operaciones de dominio.
	Loop    sync.Locker
	Log     logger.Logger
	Metrics *metrics.Metrics
}

func NewRefresher(opts Options) *Refresher {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Refresher{
		delay:   opts.Delay,
		compute: opts.Compute,
		loop:    opts.Loop,
		log:     log.With(map[string]any{"module": "summary"}),
		metrics: opts.Metrics,
		now:     time.Now,
		state:   State{Snapshot: Snapshot{LastOwnerName: NoOwner}},
	}
}

// Refresh lanza un refresco y devuelve un canal que se cierra cuando la
// tarea termina, se aplique o no.
func (r *Refresher) Refresh(ctx context.Context) <-chan struct{} {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
	gen := r.gen
	tctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.state.Loading = true
	r.state.Message = LoadingMessage
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		defer r.finish(gen)
		r.run(tctx, gen)
	}()
	return done
}

func (r *Refresher) run(ctx context.Context, gen uint64) {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.metrics.SummaryRefreshed("cancelled")
		r.log.Debug("refresco cancelado", map[string]any{"gen": gen})
		return
	case <-timer.C:
	}

	if r.loop != nil {
		r.loop.Lock()
		defer r.loop.Unlock()
	}

	snap, err := r.compute(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || ctx.Err() != nil {
		r.metrics.SummaryRefreshed("dropped")
		return
	}
	if err != nil {
		r.state.Message = "No se pudieron actualizar las estadísticas: " + err.Error()
		r.metrics.SummaryRefreshed("failed")
		r.log.Error("error al recalcular resumen", map[string]any{"error": err.Error()})
		return
	}

	r.state.Snapshot = snap
	r.state.Message = "Estadísticas actualizadas"
	r.state.RefreshedAt = r.now()
	r.metrics.SummaryRefreshed("applied")
}

// finish baja el flag de carga, salvo que otra tarea más nueva lo haya
// tomado.
func (r *Refresher) finish(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen == r.gen {
		r.state.Loading = false
		if r.state.Message == LoadingMessage {
			r.state.Message = ""
		}
	}
}

// Close cancela la tarea pendiente; su resultado no se aplica.
func (r *Refresher) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.gen++
	r.state.Loading = false
	r.state.Message = ""
}

func (r *Refresher) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
