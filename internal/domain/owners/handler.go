package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", registerOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Post("/{ownerID}/pets", addPetHandler(svc))
		or.Get("/{ownerID}/reminders", remindersHandler(svc))
	})
}

type registerOwnerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	NationalID string `json:"national_id"`
}

type addPetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	Breed   string  `json:"breed"`
	Color   string  `json:"color"`
	Sex     string  `json:"sex"`
}

type petResponse struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
	Breed   string  `json:"breed"`
	Color   string  `json:"color,omitempty"`
	Sex     string  `json:"sex,omitempty"`
}

type ownerResponse struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Address    string        `json:"address"`
	NationalID string        `json:"national_id,omitempty"`
	Pets       []petResponse `json:"pets"`
	PetNames   string        `json:"pet_names"`
	CreatedAt  time.Time     `json:"created_at"`
}

type remindersResponse struct {
	OwnerID string `json:"owner_id"`
	Email   bool   `json:"email"`
	SMS     bool   `json:"sms"`
}

// registerOwnerHandler godoc
// @Summary  Registrar dueño
// @Tags     owners
// @Accept   json
// @Produce  json
// @Success  201 {object} ownerResponse
// @Failure  400 {string} string "invalid input"
// @Router   /owners [post]
func registerOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Register(r.Context(), RegisterInput{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			Address:    req.Address,
			NationalID: req.NationalID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Owner
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

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.AddPet(r.Context(), chi.URLParam(r, "ownerID"), pets.RegisterInput{
			Name:    req.Name,
			Species: req.Species,
			Age:     req.Age,
			Weight:  req.Weight,
			Breed:   req.Breed,
			Color:   req.Color,
			Sex:     req.Sex,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func remindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "ownerID")
		rem, err := svc.PlanReminders(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, remindersResponse{OwnerID: id, Email: rem.Email, SMS: rem.SMS})
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	ps := make([]petResponse, 0, len(o.Pets))
	for _, p := range o.Pets {
		ps = append(ps, petResponse{
			Name:    p.Name,
			Species: string(p.Species),
			Age:     p.Age,
			Weight:  p.Weight,
			Breed:   p.Breed,
			Color:   p.Color,
			Sex:     string(p.Sex),
		})
	}
	return ownerResponse{
		ID:         o.ID,
		Name:       o.Name,
		Phone:      o.Phone,
		Email:      o.Email,
		Address:    o.Address,
		NationalID: o.NationalID,
		Pets:       ps,
		PetNames:   o.PetNames(),
		CreatedAt:  o.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
