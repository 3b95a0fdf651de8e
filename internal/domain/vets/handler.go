package vets

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/vets", listVetsHandler(svc))
}

type vetResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty"`
	License         string `json:"license"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Available       bool   `json:"available"`
	YearsExperience int    `json:"years_experience"`
}

// listVetsHandler godoc
// @Summary  Listar veterinarios
// @Tags     vets
// @Produce  json
// @Param    specialty query string false "substring de especialidad"
// @Param    available query bool   false "solo disponibles"
// @Success  200 {array} vetResponse
// @Router   /vets [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var (
			items []Veterinarian
			err   error
		)
		if spec := strings.TrimSpace(q.Get("specialty")); spec != "" {
			items, err = svc.FindBySpecialty(r.Context(), spec)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		onlyAvailable := q.Get("available") == "true"
		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			if onlyAvailable && !v.Available {
				continue
			}
			out = append(out, vetResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
