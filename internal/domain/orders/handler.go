package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vet-clinic/internal/domain/medications"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/orders", func(or chi.Router) {
		or.Post("/", createOrderHandler(svc))
		or.Get("/", listOrdersHandler(svc))
		or.Post("/merge", mergeOrdersHandler(svc))

		or.Get("/{orderID}", getOrderHandler(svc))
		or.Get("/{orderID}/summary", summaryHandler(svc))
		or.Post("/{orderID}/lines", addLineHandler(svc))
		or.Post("/{orderID}/process", processHandler(svc))
	})
}

type createOrderRequest struct {
	ID       int    `json:"id"` // opcional, 1000-9999
	Customer string `json:"customer"`
}

type addLineRequest struct {
	Medication string `json:"medication"`
	Quantity   int    `json:"quantity"`
}

type mergeRequest struct {
	A int `json:"a"`
	B int `json:"b"`
}

type lineResponse struct {
	Medication medications.Response `json:"medication"`
	Quantity   int                  `json:"quantity"`
	Subtotal   float64              `json:"subtotal"`
	Discount   float64              `json:"discount"`
	Total      float64              `json:"total"`
	Detail     string               `json:"detail"`
}

type orderResponse struct {
	ID            int            `json:"id"`
	Customer      string         `json:"customer"`
	CreatedAt     time.Time      `json:"created_at"`
	Status        Status         `json:"status"`
	Lines         []lineResponse `json:"lines"`
	Subtotal      float64        `json:"subtotal"`
	Discounts     float64        `json:"discounts"`
	Total         float64        `json:"total"`
	PromotedLines int            `json:"promoted_lines"`
}

// createOrderHandler godoc
// @Summary  Crear pedido
// @Tags     orders
// @Accept   json
// @Produce  json
// @Success  201 {object} orderResponse
// @Failure  400 {string} string "invalid input"
// @Failure  409 {string} string "order already exists"
// @Router   /orders [post]
func createOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{ID: req.ID, Customer: req.Customer})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOrderResponse(o))
	}
}

func listOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]orderResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOrderResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderIDParam(w, r)
		if !ok {
			return
		}
		o, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderIDParam(w, r)
		if !ok {
			return
		}
		s, err := svc.Summary(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(s))
	}
}

func addLineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderIDParam(w, r)
		if !ok {
			return
		}

		var req addLineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.AddLine(r.Context(), id, req.Medication, req.Quantity)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

func processHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderIDParam(w, r)
		if !ok {
			return
		}
		o, err := svc.Process(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(o))
	}
}

// mergeOrdersHandler godoc
// @Summary  Combinar dos pedidos
// @Tags     orders
// @Accept   json
// @Produce  json
// @Success  201 {object} orderResponse
// @Failure  404 {string} string "not found"
// @Failure  409 {string} string "order already exists"
// @Router   /orders/merge [post]
func mergeOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Merge(r.Context(), req.A, req.B)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOrderResponse(o))
	}
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		http.Error(w, "order id must be numeric", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toOrderResponse(o *Order) orderResponse {
	lines := o.Lines()
	out := make([]lineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineResponse{
			Medication: medications.ToResponse(l.Medication),
			Quantity:   l.Quantity,
			Subtotal:   l.Subtotal(),
			Discount:   l.Discount(),
			Total:      l.Total(),
			Detail:     l.Detail(),
		})
	}
	return orderResponse{
		ID:            o.ID,
		Customer:      o.Customer,
		CreatedAt:     o.CreatedAt,
		Status:        o.Status,
		Lines:         out,
		Subtotal:      o.Subtotal(),
		Discounts:     o.Discounts(),
		Total:         o.Total(),
		PromotedLines: o.PromotedLines(),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrAlreadyProcessed), errors.Is(err, ErrInsufficientStock):
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
