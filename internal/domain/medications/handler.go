package medications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/promoted", listPromotedHandler(svc))
		mr.Post("/{name}/sell", sellHandler(svc))
		mr.Post("/{name}/restock", restockHandler(svc))
	})
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type Response struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
	Description     string  `json:"description"`
	Dosage          string  `json:"dosage"`
	Promoted        bool    `json:"promoted"`
	DiscountPercent int     `json:"discount_percent"`
	Promotion       string  `json:"promotion,omitempty"`
}

// listMedicationsHandler godoc
// @Summary  Listar medicamentos
// @Tags     medications
// @Produce  json
// @Param    unique query bool false "deduplicar por nombre y dosis"
// @Success  200 {array} Response
// @Router   /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []*Medication
			err   error
		)
		if r.URL.Query().Get("unique") == "true" {
			items, err = svc.Unique(r.Context())
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

func listPromotedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Promoted(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

func sellHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Sell(r.Context(), chi.URLParam(r, "name"), req.Quantity)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(m))
	}
}

func restockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Restock(r.Context(), chi.URLParam(r, "name"), req.Quantity)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(m))
	}
}

// ToResponse lo reutiliza el handler de pedidos para el detalle de líneas.
func ToResponse(m *Medication) Response {
	out := Response{
		Name:            m.Name,
		Price:           m.Price,
		Stock:           m.Stock,
		Description:     m.Description,
		Dosage:          m.Dosage,
		Promoted:        m.Promoted(),
		DiscountPercent: m.DiscountPercent(),
	}
	if m.Promotion != nil {
		out.Promotion = m.Promotion.Description
	}
	return out
}

func toMedicationResponses(items []*Medication) []Response {
	out := make([]Response, 0, len(items))
	for _, m := range items {
		out = append(out, ToResponse(m))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
