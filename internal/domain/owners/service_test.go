package owners

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic/internal/domain/pets"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	order []string
	byID  map[string]Owner
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Owner{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if o.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[o.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[o.ID] = o
	r.order = append(r.order, o.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	if _, ok := r.byID[o.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, errRepoNotFound
	}
	return o, nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	out := make([]Owner, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, 11, 25, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestRegister_NormalizesFields(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Register(context.Background(), RegisterInput{
		Name:       " María González ",
		Phone:      "912345678",
		Email:      "Maria@Email.COM",
		Address:    "Av. Providencia 123",
		NationalID: "12345678-9",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if o.ID == "" {
		t.Fatalf("expected generated id")
	}
	if o.Phone != "+56 (9) 1234-5678" {
		t.Fatalf("unexpected phone format: %q", o.Phone)
	}
	if o.Email != "maria@email.com" {
		t.Fatalf("expected normalized email, got %q", o.Email)
	}
	if o.NationalID != "12.345.678-9" {
		t.Fatalf("unexpected RUT format: %q", o.NationalID)
	}
	if o.PetNames() != "Sin mascotas registradas" {
		t.Fatalf("unexpected pet names: %q", o.PetNames())
	}
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	svc, repo := newTestService()

	cases := []RegisterInput{
		{Name: "A", Phone: "912345678", Email: "a@b.cl"},
		{Name: "Ana", Phone: "12345", Email: "a@b.cl"},
		{Name: "Ana", Phone: "912345678", Email: "no-es-email"},
		{Name: "Ana", Phone: "912345678", Email: "a@b.cl", NationalID: "abc"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
	if len(repo.order) != 0 {
		t.Fatalf("invalid registrations must not be stored")
	}
}

func TestAddPet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	o, err := svc.Register(ctx, RegisterInput{Name: "Carlos", Phone: "987654321", Email: "carlos@email.com"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	o, err = svc.AddPet(ctx, o.ID, pets.RegisterInput{Name: "Max", Age: 5, Weight: 25})
	if err != nil {
		t.Fatalf("AddPet returned error: %v", err)
	}
	o, err = svc.AddPet(ctx, o.ID, pets.RegisterInput{Name: "Mimi", Species: "Gato", Age: 2, Weight: 3.5})
	if err != nil {
		t.Fatalf("AddPet returned error: %v", err)
	}

	if o.PetCount() != 2 || !o.HasPets() {
		t.Fatalf("expected 2 pets, got %d", o.PetCount())
	}
	if o.PetNames() != "Max, Mimi" {
		t.Fatalf("unexpected pet names: %q", o.PetNames())
	}

	if _, err := svc.AddPet(ctx, o.ID, pets.RegisterInput{Name: "Bad", Age: 40, Weight: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.AddPet(ctx, "missing", pets.RegisterInput{Name: "X", Age: 1, Weight: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnique_UsesBusinessKey(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_ = repo.Create(ctx, Owner{ID: "1", Name: "Ana Martínez", Email: "ana@email.com", Phone: "111"})
	_ = repo.Create(ctx, Owner{ID: "2", Name: "ANA MARTÍNEZ", Email: "ANA@email.com", Phone: "222"})
	_ = repo.Create(ctx, Owner{ID: "3", Name: "Pedro Silva", Email: "pedro@email.com"})

	got, err := svc.Unique(ctx)
	if err != nil {
		t.Fatalf("Unique returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 unique owners, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected first occurrences in order, got %s,%s", got[0].ID, got[1].ID)
	}

	again := Dedupe(got)
	if len(again) != len(got) {
		t.Fatalf("dedupe must be idempotent")
	}
}

func TestLast(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, ok, _ := svc.Last(ctx); ok {
		t.Fatalf("expected no last owner on empty repo")
	}

	_ = repo.Create(ctx, Owner{ID: "1", Name: "Laura"})
	_ = repo.Create(ctx, Owner{ID: "2", Name: "Pedro"})

	o, ok, err := svc.Last(ctx)
	if err != nil || !ok {
		t.Fatalf("expected last owner, got ok=%v err=%v", ok, err)
	}
	if o.Name != "Pedro" {
		t.Fatalf("expected Pedro, got %q", o.Name)
	}
}

func TestPlanReminders(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_ = repo.Create(ctx, Owner{ID: "1", Email: "ana@email.com", Phone: "+56 (9) 1111-2222"})
	_ = repo.Create(ctx, Owner{ID: "2", Email: "sin-arroba", Phone: "   "})

	r, err := svc.PlanReminders(ctx, "1")
	if err != nil {
		t.Fatalf("PlanReminders returned error: %v", err)
	}
	if !r.Email || !r.SMS {
		t.Fatalf("expected both channels, got %+v", r)
	}

	r, err = svc.PlanReminders(ctx, "2")
	if err != nil {
		t.Fatalf("PlanReminders returned error: %v", err)
	}
	if r.Email || r.SMS {
		t.Fatalf("expected no channels, got %+v", r)
	}
}
