package memory

import (
	"context"
	"time"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/orders"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/vets"
	"vet-clinic/internal/domain/visits"
	"vet-clinic/internal/platform/format"

	"github.com/google/uuid"
)

// Store agrupa los repositorios en memoria. Lo construye main y se pasa
// explícitamente a cada service.
type Store struct {
	Owners      owners.Repository
	Vets        vets.Repository
	Medications medications.Repository
	Orders      orders.Repository
	Visits      visits.Repository
}

func NewStore() *Store {
	return &Store{
		Owners:      NewOwnerRepo(),
		Vets:        NewVetRepo(),
		Medications: NewMedicationRepo(),
		Orders:      NewOrderRepo(),
		Visits:      NewVisitRepo(),
	}
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func strPtr(s string) *string { return &s }

// Seed carga los datos de demostración.
func Seed(ctx context.Context, s *Store) error {
	vetList := []vets.Veterinarian{
		{Name: "Dr. Juan Pérez", Specialty: "Medicina General", License: "VET-101", Phone: "+56 (9) 2222-1111", Email: "jperez@vetclinic.cl", Available: true, YearsExperience: 12},
		{Name: "Dra. María Silva", Specialty: "Cirugía", License: "VET-102", Phone: "+56 (9) 2222-2222", Email: "msilva@vetclinic.cl", Available: true, YearsExperience: 9},
		{Name: "Dr. Carlos López", Specialty: "Emergencias", License: "VET-103", Phone: "+56 (9) 2222-3333", Email: "clopez@vetclinic.cl", Available: false, YearsExperience: 7},
		{Name: "Dr. García", Specialty: "Cirugía", License: "VET-001", Available: true, YearsExperience: 10},
		{Name: "Dra. López", Specialty: "Pediatría", License: "VET-002", Available: true, YearsExperience: 8},
		{Name: "Dr. Martínez", Specialty: "General", License: "VET-003", Available: false, YearsExperience: 5},
	}
	for i := range vetList {
		vetList[i].ID = uuid.NewString()
		if err := s.Vets.Create(ctx, vetList[i]); err != nil {
			return err
		}
	}

	type ownerSeed struct {
		owner owners.Owner
		pet   pets.Pet
	}
	ownerSeeds := []ownerSeed{
		{
			owners.Owner{Name: "María González", Phone: "+56912345678", Email: "maria.gonzalez@email.com", Address: "Av. Providencia 123", NationalID: "12.345.678-9"},
			pets.Pet{Name: "Luna", Species: pets.SpeciesDog, Age: 3, Weight: 12.5, Breed: "Labrador", Color: "Dorado", Sex: pets.SexFemale},
		},
		{
			owners.Owner{Name: "Carlos Rodríguez", Phone: "+56987654321", Email: "carlos.r@email.com", Address: "Los Leones 456", NationalID: "23.456.789-0"},
			pets.Pet{Name: "Max", Species: pets.SpeciesCat, Age: 5, Weight: 4.8, Breed: "Persa", Color: "Blanco", Sex: pets.SexMale},
		},
		{
			owners.Owner{Name: "Ana Martínez", Phone: "+56998765432", Email: "ana.martinez@email.com", Address: "Las Condes 789", NationalID: "34.567.890-1"},
			pets.Pet{Name: "Rocky", Species: pets.SpeciesDog, Age: 7, Weight: 28, Breed: "Pastor Alemán", Color: "Negro y café", Sex: pets.SexMale},
		},
		{
			owners.Owner{Name: "Pedro Silva", Phone: "+56976543210", Email: "pedro.silva@email.com", Address: "Vitacura 321", NationalID: "45.678.901-2"},
			pets.Pet{Name: "Mimi", Species: pets.SpeciesCat, Age: 2, Weight: 3.5, Breed: "Siamés", Color: "Crema", Sex: pets.SexFemale},
		},
		{
			owners.Owner{Name: "Laura Fernández", Phone: "+56965432109", Email: "laura.f@email.com", Address: "Ñuñoa 654", NationalID: "56.789.012-3"},
			pets.Pet{Name: "Bobby", Species: pets.SpeciesDog, Age: 1, Weight: 8, Breed: "Beagle", Color: "Tricolor", Sex: pets.SexMale},
		},
	}
	ownerList := make([]owners.Owner, 0, len(ownerSeeds))
	for i, os := range ownerSeeds {
		o := os.owner
		o.ID = uuid.NewString()
		o.Phone = format.Phone(o.Phone)
		o.CreatedAt = at(2025, time.November, 19, 9, i)
		o.AddPet(os.pet)
		if err := s.Owners.Create(ctx, o); err != nil {
			return err
		}
		ownerList = append(ownerList, o)
	}

	catalog := medications.Catalog()
	for _, m := range catalog {
		if err := s.Medications.Add(ctx, m); err != nil {
			return err
		}
	}
	pulgas, antib := catalog[0], catalog[3]

	a := orders.New(1000, "Ana", at(2025, time.November, 24, 10, 0))
	a.AddLine(pulgas, 2)
	b := orders.New(2000, "Ana", at(2025, time.November, 24, 11, 30))
	b.AddLine(pulgas, 1)
	b.AddLine(antib, 3)
	for _, o := range []*orders.Order{a, b} {
		if err := s.Orders.Create(ctx, o); err != nil {
			return err
		}
	}

	visitSeeds := []struct {
		visit visits.Visit
		owner int
		vet   int
	}{
		{visits.Visit{ID: 1001, Description: "Control de rutina y vacunación anual", Cost: 18000, Status: "Completada", ServiceType: "Control",
			ScheduledAt: at(2025, time.November, 20, 10, 0), Comments: strPtr("Mascota en excelente estado de salud")}, 0, 0},
		{visits.Visit{ID: 1002, Description: "Emergencia: Intoxicación alimentaria", Cost: 50000, Status: "Completada", ServiceType: "Emergencia",
			ScheduledAt: at(2025, time.November, 21, 15, 30), Comments: strPtr("Tratamiento exitoso, mascota recuperada")}, 1, 2},
		{visits.Visit{ID: 1003, Description: "Extracción de masa cutánea", Cost: 80000, Status: "Completada", ServiceType: "Cirugía Menor",
			ScheduledAt: at(2025, time.November, 22, 9, 0), Comments: strPtr("Procedimiento exitoso, resultados de biopsia benignos")}, 2, 1},
		{visits.Visit{ID: 1004, Description: "Revisión por pérdida de apetito", Cost: 25000, Status: "Pendiente", ServiceType: "Consulta General",
			ScheduledAt: at(2025, time.November, 25, 14, 0)}, 3, 0},
		{visits.Visit{ID: 1005, Description: "Desparasitación preventiva", Cost: 12000, Status: "Completada", ServiceType: "Desparasitación",
			ScheduledAt: at(2025, time.November, 23, 11, 30), Comments: strPtr("Próxima desparasitación en 3 meses")}, 4, 0},
	}
	for _, vs := range visitSeeds {
		o := ownerList[vs.owner]
		cv := visits.CompleteVisit{
			Visit: vs.visit,
			Owner: o,
			Pet:   o.Pets[0],
			Vet:   vetList[vs.vet],
			At:    format.DateTime(vs.visit.ScheduledAt),
		}
		if err := s.Visits.Append(ctx, cv); err != nil {
			return err
		}
	}
	return nil
}
