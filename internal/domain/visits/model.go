package visits

import (
	"time"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/vets"
)

// Visit es una consulta. Status es texto libre; ver ParseStatus para la
// versión tipada.
type Visit struct {
	ID          int
	Description string
	Cost        float64
	Status      string
	ServiceType string
	ScheduledAt time.Time
	Comments    *string
}

// CompleteVisit es la unidad que guarda el repositorio.
type CompleteVisit struct {
	Visit Visit
	Owner owners.Owner
	Pet   pets.Pet
	Vet   vets.Veterinarian
	At    string // fecha/hora para mostrar
}

type ServiceCount struct {
	ServiceType string
	Count       int
}

type Statistics struct {
	Total     int
	Pending   int
	Scheduled int
	Completed int
	Revenue   float64
	Average   float64
	Top       []ServiceCount
}
