package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/logger"
)

// PanicMessage es lo que ve el usuario cuando un handler entra en pánico.
const PanicMessage = "Ocurrió un error inesperado, intenta nuevamente"

// Recover atrapa cualquier pánico, lo registra y responde 500 con un
// mensaje legible. El proceso sigue atendiendo.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered", map[string]any{
					"panic":  rec,
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": PanicMessage})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
