package visits

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vet-clinic/internal/platform/format"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(svc))
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/stats", statsHandler(svc))
		vr.Get("/report", reportHandler(svc))
		vr.Get("/cost", costHandler())
	})
}

type createVisitRequest struct {
	Description string  `json:"description"`
	ServiceType string  `json:"service_type"`
	Minutes     int     `json:"minutes"`
	Pets        int     `json:"pets"`
	Status      string  `json:"status"`
	ScheduledAt string  `json:"scheduled_at"` // dd/MM/yyyy HH:mm opcional
	Comments    *string `json:"comments"`
}

type visitResponse struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	CostLabel   string    `json:"cost_label"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Comments    *string   `json:"comments,omitempty"`
	Owner       string    `json:"owner"`
	Pet         string    `json:"pet"`
	Vet         string    `json:"vet"`
	At          string    `json:"at"`
}

type serviceCountResponse struct {
	ServiceType string `json:"service_type"`
	Count       int    `json:"count"`
}

type statsResponse struct {
	Total     int                    `json:"total"`
	Pending   int                    `json:"pending"`
	Scheduled int                    `json:"scheduled"`
	Completed int                    `json:"completed"`
	Revenue   float64                `json:"revenue"`
	Average   float64                `json:"average"`
	Top       []serviceCountResponse `json:"top_services"`
}

type costResponse struct {
	ServiceType string  `json:"service_type"`
	Minutes     int     `json:"minutes"`
	Pets        int     `json:"pets"`
	Base        float64 `json:"base"`
	Cost        float64 `json:"cost"`
	Final       float64 `json:"final"`
	Duration    string  `json:"duration"`
	Formatted   string  `json:"formatted"`
}

// listVisitsHandler godoc
// @Summary  Listar consultas
// @Tags     visits
// @Produce  json
// @Param    status query string false "filtrar por estado"
// @Success  200 {array} visitResponse
// @Router   /visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []CompleteVisit
			err   error
		)
		if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
			items, err = svc.FilterByStatus(r.Context(), status)
		} else {
			items, err = svc.All(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, cv := range items {
			out = append(out, toVisitResponse(cv))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createVisitHandler godoc
// @Summary  Registrar consulta (costo calculado)
// @Tags     visits
// @Accept   json
// @Produce  json
// @Success  201 {object} visitResponse
// @Router   /visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var at time.Time
		if raw := strings.TrimSpace(req.ScheduledAt); raw != "" {
			t, ok := format.ParseDateTime(raw)
			if !ok {
				http.Error(w, "scheduled_at must be dd/MM/yyyy HH:mm", http.StatusBadRequest)
				return
			}
			at = t
		}

		v := svc.NewVisitSafe(NewVisitInput{
			ID:          svc.NextID(),
			Description: req.Description,
			Status:      req.Status,
			ServiceType: req.ServiceType,
			ScheduledAt: at,
			Comments:    req.Comments,
		})
		// el costo sale del tipo ya normalizado (vacío => Consulta General)
		v.Cost = ApplyMultiPetDiscount(Cost(v.ServiceType, req.Minutes), req.Pets)

		cv, err := svc.Add(r.Context(), v)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toVisitResponse(cv))
	}
}

// statsHandler godoc
// @Summary  Estadísticas de consultas
// @Tags     visits
// @Produce  json
// @Success  200 {object} statsResponse
// @Router   /visits/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Statistics(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		top := make([]serviceCountResponse, 0, len(st.Top))
		for _, sc := range st.Top {
			top = append(top, serviceCountResponse(sc))
		}
		writeJSON(w, http.StatusOK, statsResponse{
			Total:     st.Total,
			Pending:   st.Pending,
			Scheduled: st.Scheduled,
			Completed: st.Completed,
			Revenue:   st.Revenue,
			Average:   st.Average,
			Top:       top,
		})
	}
}

// reportHandler godoc
// @Summary  Reporte de consultas en texto
// @Tags     visits
// @Produce  plain
// @Success  200 {string} string
// @Router   /visits/report [get]
func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Report(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rep))
	}
}

// costHandler godoc
// @Summary  Cotizar consulta
// @Tags     visits
// @Produce  json
// @Param    service_type query string false "tipo de servicio"
// @Param    minutes      query int    true  "duración en minutos"
// @Param    pets         query int    false "mascotas atendidas"
// @Success  200 {object} costResponse
// @Failure  400 {string} string "invalid input"
// @Router   /visits/cost [get]
func costHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		minutes, err := strconv.Atoi(q.Get("minutes"))
		if err != nil || minutes < 0 {
			http.Error(w, "minutes must be a non-negative number", http.StatusBadRequest)
			return
		}
		nPets := 1
		if raw := q.Get("pets"); raw != "" {
			if nPets, err = strconv.Atoi(raw); err != nil {
				http.Error(w, "pets must be numeric", http.StatusBadRequest)
				return
			}
		}

		st := q.Get("service_type")
		cost := Cost(st, minutes)
		final := ApplyMultiPetDiscount(cost, nPets)
		writeJSON(w, http.StatusOK, costResponse{
			ServiceType: st,
			Minutes:     minutes,
			Pets:        nPets,
			Base:        BaseCost(st),
			Cost:        cost,
			Final:       final,
			Duration:    format.Duration(minutes),
			Formatted:   format.Currency(final),
		})
	}
}

func toVisitResponse(cv CompleteVisit) visitResponse {
	return visitResponse{
		ID:          cv.Visit.ID,
		Description: cv.Visit.Description,
		Cost:        cv.Visit.Cost,
		CostLabel:   format.Currency(cv.Visit.Cost),
		Status:      cv.Visit.Status,
		ServiceType: cv.Visit.ServiceType,
		ScheduledAt: cv.Visit.ScheduledAt,
		Comments:    cv.Visit.Comments,
		Owner:       cv.Owner.Name,
		Pet:         cv.Pet.Name,
		Vet:         cv.Vet.Name,
		At:          cv.At,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
