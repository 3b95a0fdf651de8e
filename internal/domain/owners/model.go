package owners

import (
	"strings"
	"time"

	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/platform/bizkey"
)

// Owner es el dueño registrado. ID es solo identidad de almacenamiento;
// la igualdad de negocio la define Key.
type Owner struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	Address    string
	NationalID string // RUT
	Pets       []pets.Pet
	CreatedAt  time.Time
}

// Key es la clave de negocio (nombre, email) sin distinguir mayúsculas.
type Key struct {
	Name  string
	Email string
}

func (o Owner) Key() Key {
	return Key{Name: bizkey.Fold(o.Name), Email: bizkey.Fold(o.Email)}
}

// Same compara por clave de negocio, ignorando teléfono, dirección y mascotas.
func (o Owner) Same(other Owner) bool {
	return o.Key() == other.Key()
}

func (o *Owner) AddPet(p pets.Pet) {
	o.Pets = append(o.Pets, p)
}

func (o Owner) PetCount() int { return len(o.Pets) }
func (o Owner) HasPets() bool { return len(o.Pets) > 0 }

func (o Owner) PetNames() string {
	if len(o.Pets) == 0 {
		return "Sin mascotas registradas"
	}
	names := make([]string, 0, len(o.Pets))
	for _, p := range o.Pets {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// Dedupe deja el primer dueño de cada clave, en el orden de entrada.
func Dedupe(list []Owner) []Owner {
	return bizkey.Dedupe(list, Owner.Key)
}
