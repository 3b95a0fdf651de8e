package middleware

import (
	"net/http"
	"sync"
)

// EventLoop serializa las acciones sobre el dominio: un request a la vez,
// igual que un hilo de UI. El mismo lock lo toma el refresco del resumen.
type EventLoop struct {
	mu sync.Mutex
}

func NewEventLoop() *EventLoop {
	return &EventLoop{}
}

func (l *EventLoop) Lock()   { l.mu.Lock() }
func (l *EventLoop) Unlock() { l.mu.Unlock() }

// Middleware toma el lock durante todo el handler.
func (l *EventLoop) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}
