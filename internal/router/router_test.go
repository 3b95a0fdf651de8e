package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mem "vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T, seed bool) *httptest.Server {
	t.Helper()

	store := mem.NewStore()
	if seed {
		if err := mem.Seed(context.Background(), store); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	rt := NewRouter(Options{Store: store, Metrics: metrics.New(), RefreshDelay: 10 * time.Millisecond})

	srv := httptest.NewServer(rt)
	t.Cleanup(func() {
		rt.Close()
		srv.Close()
	})
	return srv
}

func TestE2E_OwnerLifecycle(t *testing.T) {
	srv := newTestServer(t, false)

	st, body := doReq(t, srv.URL, "POST", "/owners", map[string]any{
		"name":    "Ana Pérez",
		"phone":   "912345678",
		"email":   "ana@mail.cl",
		"address": "Calle 1",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register owner, got %d body=%s", st, string(body))
	}
	var owner struct {
		ID       string `json:"id"`
		Phone    string `json:"phone"`
		PetNames string `json:"pet_names"`
	}
	_ = json.Unmarshal(body, &owner)
	if owner.ID == "" {
		t.Fatalf("missing owner id body=%s", string(body))
	}
	if owner.Phone != "+56 (9) 1234-5678" {
		t.Fatalf("phone not normalised: %q", owner.Phone)
	}
	if owner.PetNames != "Sin mascotas registradas" {
		t.Fatalf("unexpected pet names: %q", owner.PetNames)
	}

	// mascota inválida
	st, _ = doReq(t, srv.URL, "POST", "/owners/"+owner.ID+"/pets", map[string]any{"name": "Luna", "age": 40, "weight": 10})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid pet, got %d", st)
	}

	st, body = doReq(t, srv.URL, "POST", "/owners/"+owner.ID+"/pets", map[string]any{"name": "Luna", "age": 3, "weight": 10})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add pet, got %d body=%s", st, string(body))
	}
	var withPet struct {
		Pets []struct {
			Species string `json:"species"`
			Breed   string `json:"breed"`
		} `json:"pets"`
	}
	_ = json.Unmarshal(body, &withPet)
	if len(withPet.Pets) != 1 || withPet.Pets[0].Species != "Perro" || withPet.Pets[0].Breed != "Mestizo" {
		t.Fatalf("pet defaults not applied: %+v", withPet.Pets)
	}

	st, body = doReq(t, srv.URL, "GET", "/owners/"+owner.ID+"/reminders", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 reminders, got %d", st)
	}
	var rem struct {
		Email bool `json:"email"`
		SMS   bool `json:"sms"`
	}
	_ = json.Unmarshal(body, &rem)
	if !rem.Email || !rem.SMS {
		t.Fatalf("expected email and sms reminders, got %+v", rem)
	}

	st, _ = doReq(t, srv.URL, "GET", "/owners/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown owner, got %d", st)
	}

	// duplicado por clave de negocio
	st, _ = doReq(t, srv.URL, "POST", "/owners", map[string]any{
		"name": "ANA PÉREZ", "phone": "912345678", "email": "ANA@mail.cl", "address": "Otra",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 second register, got %d", st)
	}
	st, body = doReq(t, srv.URL, "GET", "/owners?unique=true", nil)
	var unique []json.RawMessage
	_ = json.Unmarshal(body, &unique)
	if st != http.StatusOK || len(unique) != 1 {
		t.Fatalf("expected 1 unique owner, got %d (status %d)", len(unique), st)
	}
}

func TestE2E_RegisterOwnerValidation(t *testing.T) {
	srv := newTestServer(t, false)

	st, _ := doReq(t, srv.URL, "POST", "/owners", map[string]any{
		"name": "Ana", "phone": "123", "email": "no-es-email", "address": "x",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
}

func TestE2E_OrdersAgainstSeededStock(t *testing.T) {
	srv := newTestServer(t, true)

	st, body := doReq(t, srv.URL, "POST", "/orders/1000/process", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 process, got %d body=%s", st, string(body))
	}
	var processed struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &processed)
	if processed.Status != "Procesado" {
		t.Fatalf("expected Procesado, got %q", processed.Status)
	}

	st, _ = doReq(t, srv.URL, "POST", "/orders/1000/process", nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 for reprocess, got %d", st)
	}

	st, body = doReq(t, srv.URL, "GET", "/medications", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 medications, got %d", st)
	}
	var meds []struct {
		Name  string `json:"name"`
		Stock int    `json:"stock"`
	}
	_ = json.Unmarshal(body, &meds)
	if len(meds) != 5 || meds[0].Name != "Antipulgas Premium" || meds[0].Stock != 48 {
		t.Fatalf("expected antipulgas stock 48, got %+v", meds)
	}

	// 2000 pide 3 antibióticos de 20; se agota con una venta previa
	st, _ = doReq(t, srv.URL, "POST", "/medications/Antibi%C3%B3tico%20Veterinario/sell", map[string]any{"quantity": 18})
	if st != http.StatusOK {
		t.Fatalf("expected 200 sell, got %d", st)
	}
	st, _ = doReq(t, srv.URL, "POST", "/orders/2000/process", nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 insufficient stock, got %d", st)
	}

	st, body = doReq(t, srv.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `vetclinic_orders_processed_total{result="processed"} 1`) {
		t.Fatalf("expected processed counter in metrics, got %d", st)
	}
}

func TestE2E_CreateAndMergeOrders(t *testing.T) {
	srv := newTestServer(t, true)

	st, body := doReq(t, srv.URL, "POST", "/orders", map[string]any{"id": 3000, "customer": "Pedro"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create order, got %d body=%s", st, string(body))
	}
	st, _ = doReq(t, srv.URL, "POST", "/orders", map[string]any{"id": 3000, "customer": "Pedro"})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate order, got %d", st)
	}
	st, _ = doReq(t, srv.URL, "POST", "/orders", map[string]any{"id": 12, "customer": "Pedro"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid order number, got %d", st)
	}

	st, body = doReq(t, srv.URL, "POST", "/orders/3000/lines", map[string]any{"medication": "complejo vitamínico", "quantity": 2})
	if st != http.StatusOK {
		t.Fatalf("expected 200 add line, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, srv.URL, "POST", "/orders/merge", map[string]any{"a": 1000, "b": 2000})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 merge, got %d body=%s", st, string(body))
	}
	var merged struct {
		ID       int    `json:"id"`
		Customer string `json:"customer"`
		Lines    []struct {
			Quantity int `json:"quantity"`
		} `json:"lines"`
	}
	_ = json.Unmarshal(body, &merged)
	// id promedio; antipulgas se suma en una sola línea
	if merged.ID != 1500 || merged.Customer != "Ana" || len(merged.Lines) != 2 || merged.Lines[0].Quantity != 3 {
		t.Fatalf("unexpected merged order: %+v", merged)
	}

	st, _ = doReq(t, srv.URL, "POST", "/orders/merge", map[string]any{"a": 1000, "b": 2000})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 merging twice, got %d", st)
	}
}

func TestE2E_VisitsAndStats(t *testing.T) {
	srv := newTestServer(t, true)

	st, body := doReq(t, srv.URL, "GET", "/visits/stats", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 stats, got %d", st)
	}
	var stats struct {
		Total     int     `json:"total"`
		Pending   int     `json:"pending"`
		Completed int     `json:"completed"`
		Revenue   float64 `json:"revenue"`
	}
	_ = json.Unmarshal(body, &stats)
	if stats.Total != 5 || stats.Pending != 1 || stats.Completed != 4 || stats.Revenue != 185000 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	st, body = doReq(t, srv.URL, "POST", "/visits", map[string]any{
		"description":  "",
		"service_type": "Cirugía Menor",
		"minutes":      90,
		"pets":         2,
		"scheduled_at": "01/12/2025 10:30",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
	}
	var created struct {
		Description string  `json:"description"`
		Owner       string  `json:"owner"`
		Cost        float64 `json:"cost"`
	}
	_ = json.Unmarshal(body, &created)
	if created.Description == "" || created.Owner != "Por asignar" || created.Cost <= 0 {
		t.Fatalf("unexpected created visit: %+v", created)
	}

	st, _ = doReq(t, srv.URL, "POST", "/visits", map[string]any{"scheduled_at": "mañana"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d", st)
	}

	st, body = doReq(t, srv.URL, "GET", "/visits?status=PENDIENTE", nil)
	var pending []json.RawMessage
	_ = json.Unmarshal(body, &pending)
	if st != http.StatusOK || len(pending) != 2 {
		t.Fatalf("expected 2 pending visits, got %d", len(pending))
	}

	st, body = doReq(t, srv.URL, "GET", "/visits/cost?service_type=consulta%20general&minutes=30", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"formatted":"CLP $25.000"`) {
		t.Fatalf("unexpected cost quote %d body=%s", st, string(body))
	}
}

func TestE2E_PromotionsAndStock(t *testing.T) {
	srv := newTestServer(t, false)

	st, body := doReq(t, srv.URL, "GET", "/promotions/volume?quantity=10&unit_price=1000", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 volume, got %d", st)
	}
	var vol struct {
		Valid bool    `json:"valid"`
		Total float64 `json:"total"`
	}
	_ = json.Unmarshal(body, &vol)
	if !vol.Valid || vol.Total != 9500 {
		t.Fatalf("unexpected volume result: %+v", vol)
	}

	st, body = doReq(t, srv.URL, "GET", "/promotions/active?date=no-es-fecha", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"active":false`) {
		t.Fatalf("bad date must yield no promotion, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, srv.URL, "GET", "/stock/level?quantity=3", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"low_stock":true`) {
		t.Fatalf("expected low stock, got %d body=%s", st, string(body))
	}
}

func TestE2E_SummaryRefresh(t *testing.T) {
	srv := newTestServer(t, true)

	st, body := doReq(t, srv.URL, "GET", "/summary", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"last_owner_name":"Ninguno"`) {
		t.Fatalf("unexpected initial summary %d body=%s", st, string(body))
	}

	st, body = doReq(t, srv.URL, "POST", "/summary/refresh", nil)
	if st != http.StatusAccepted || !strings.Contains(string(body), `"loading":true`) {
		t.Fatalf("expected 202 loading, got %d body=%s", st, string(body))
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, body = doReq(t, srv.URL, "GET", "/summary", nil)
		var s struct {
			Loading  bool `json:"loading"`
			Snapshot struct {
				TotalPets     int    `json:"total_pets"`
				TotalVisits   int    `json:"total_visits"`
				LastOwnerName string `json:"last_owner_name"`
			} `json:"snapshot"`
		}
		_ = json.Unmarshal(body, &s)
		if !s.Loading {
			if s.Snapshot.TotalPets != 5 || s.Snapshot.TotalVisits != 5 || s.Snapshot.LastOwnerName != "Laura Fernández" {
				t.Fatalf("unexpected snapshot: %+v", s.Snapshot)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("summary refresh did not finish")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestE2E_HealthAndSwagger(t *testing.T) {
	srv := newTestServer(t, false)

	st, body := doReq(t, srv.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health %d %q", st, string(body))
	}

	st, body = doReq(t, srv.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Vet Clinic API") {
		t.Fatalf("unexpected swagger doc %d", st)
	}
}

func TestRecover_ReturnsUserMessage(t *testing.T) {
	rt := NewRouter(Options{})
	defer rt.Close()

	// se monta una ruta que entra en pánico sobre el mismo stack de middlewares
	r := rt.Handler.(chi.Router)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	srv := httptest.NewServer(rt)
	defer srv.Close()

	st, body := doReq(t, srv.URL, "GET", "/boom", nil)
	if st != http.StatusInternalServerError || !strings.Contains(string(body), "error inesperado") {
		t.Fatalf("expected recovered 500, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, srv.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("server must keep serving after a panic, got %d", st)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
