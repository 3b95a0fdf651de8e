package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, ref *Refresher) {
	r.Get("/summary", getSummaryHandler(ref))
	r.Post("/summary/refresh", refreshHandler(ref))
}

type snapshotResponse struct {
	TotalPets     int    `json:"total_pets"`
	TotalVisits   int    `json:"total_visits"`
	LastOwnerName string `json:"last_owner_name"`
	TotalOwners   int    `json:"total_owners"`
	PendingVisits int    `json:"pending_visits"`
	TotalVets     int    `json:"total_vets"`
}

type stateResponse struct {
	Loading     bool             `json:"loading"`
	Message     string           `json:"message,omitempty"`
	Snapshot    snapshotResponse `json:"snapshot"`
	RefreshedAt *time.Time       `json:"refreshed_at,omitempty"`
}

// getSummaryHandler godoc
// @Summary  Resumen de la clínica
// @Tags     summary
// @Produce  json
// @Success  200 {object} stateResponse
// @Router   /summary [get]
func getSummaryHandler(ref *Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toStateResponse(ref.State()))
	}
}

// refreshHandler godoc
// @Summary  Recalcular resumen (con demora)
// @Tags     summary
// @Produce  json
// @Success  202 {object} stateResponse
// @Router   /summary/refresh [post]
func refreshHandler(ref *Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// La tarea sobrevive al request; solo Close o un refresh nuevo la cancelan.
		ref.Refresh(context.WithoutCancel(r.Context()))
		writeJSON(w, http.StatusAccepted, toStateResponse(ref.State()))
	}
}

func toStateResponse(st State) stateResponse {
	out := stateResponse{
		Loading:  st.Loading,
		Message:  st.Message,
		Snapshot: snapshotResponse(st.Snapshot),
	}
	if !st.RefreshedAt.IsZero() {
		at := st.RefreshedAt
		out.RefreshedAt = &at
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
