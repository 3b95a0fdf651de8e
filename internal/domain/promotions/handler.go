package promotions

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
	r.Route("/promotions", func(pr chi.Router) {
		pr.Get("/", listPromotionsHandler(svc))
		pr.Get("/active", activePromotionHandler(svc))
		pr.Get("/volume", volumeDiscountHandler())
		pr.Get("/price", combinedPriceHandler(svc))
	})
	r.Get("/stock/level", stockLevelHandler())
}

type promotionResponse struct {
	Name    string `json:"name"`
	From    string `json:"from"` // dd/MM/yyyy
	To      string `json:"to"`
	Percent int    `json:"percent"`
}

type activeResponse struct {
	Date      string             `json:"date"`
	Active    bool               `json:"active"`
	Promotion *promotionResponse `json:"promotion,omitempty"`
}

type volumeResponse struct {
	Valid    bool    `json:"valid"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	Percent  int     `json:"percent"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Message  string  `json:"message"`
}

type priceResponse struct {
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Date      string  `json:"date"`
	Total     float64 `json:"total"`
	Formatted string  `json:"formatted"`
}

type stockLevelResponse struct {
	Quantity int    `json:"quantity"`
	Level    string `json:"level"`
	Label    string `json:"label"`
	Advice   string `json:"advice,omitempty"`
	LowStock bool   `json:"low_stock"`
}

// listPromotionsHandler godoc
// @Summary  Tabla de promociones
// @Tags     promotions
// @Produce  json
// @Success  200 {array} promotionResponse
// @Router   /promotions [get]
func listPromotionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := svc.Table()
		out := make([]promotionResponse, 0, len(table))
		for _, p := range table {
			out = append(out, toPromotionResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// activePromotionHandler godoc
// @Summary  Promoción vigente en una fecha
// @Tags     promotions
// @Produce  json
// @Param    date query string false "dd/MM/yyyy (default hoy)"
// @Success  200 {object} activeResponse
// @Router   /promotions/active [get]
func activePromotionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := strings.TrimSpace(r.URL.Query().Get("date"))

		var (
			p  Promotion
			ok bool
		)
		if date == "" {
			date = format.Date(svc.now())
			p, ok = svc.ActiveToday()
		} else {
			p, ok = svc.ActiveOnString(date)
		}

		resp := activeResponse{Date: date, Active: ok}
		if ok {
			pr := toPromotionResponse(p)
			resp.Promotion = &pr
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func volumeDiscountHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err1 := strconv.Atoi(r.URL.Query().Get("quantity"))
		unit, err2 := strconv.ParseFloat(r.URL.Query().Get("unit_price"), 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "quantity and unit_price must be numeric", http.StatusBadRequest)
			return
		}

		res := VolumeDiscount(q, unit)
		writeJSON(w, http.StatusOK, volumeResponse(res))
	}
}

func combinedPriceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		qty, err1 := strconv.Atoi(q.Get("quantity"))
		unit, err2 := strconv.ParseFloat(q.Get("unit_price"), 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "quantity and unit_price must be numeric", http.StatusBadRequest)
			return
		}

		var date time.Time
		if raw := strings.TrimSpace(q.Get("date")); raw != "" {
			d, ok := format.ParseDate(raw)
			if !ok {
				http.Error(w, "date must be dd/MM/yyyy", http.StatusBadRequest)
				return
			}
			date = d
		} else {
			date = svc.now()
		}

		total := svc.CombinedPrice(unit, qty, date)
		writeJSON(w, http.StatusOK, priceResponse{
			UnitPrice: unit,
			Quantity:  qty,
			Date:      format.Date(date),
			Total:     total,
			Formatted: format.Currency(total),
		})
	}
}

func stockLevelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := strconv.Atoi(r.URL.Query().Get("quantity"))
		if err != nil {
			http.Error(w, "quantity must be numeric", http.StatusBadRequest)
			return
		}

		level := ClassifyStock(q)
		writeJSON(w, http.StatusOK, stockLevelResponse{
			Quantity: q,
			Level:    string(level),
			Label:    level.Label(),
			Advice:   level.Advice(),
			LowStock: IsLowStock(q),
		})
	}
}

func toPromotionResponse(p Promotion) promotionResponse {
	return promotionResponse{
		Name:    p.Name,
		From:    format.Date(p.From),
		To:      format.Date(p.To),
		Percent: p.Percent,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
