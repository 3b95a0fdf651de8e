package pets

import (
	"fmt"
	"strings"
)

// Species es texto libre en la clínica; estas son las habituales.
type Species string

const (
	SpeciesDog    Species = "Perro"
	SpeciesCat    Species = "Gato"
	SpeciesRabbit Species = "Conejo"
	SpeciesNA     Species = "N/A"
)

// Sex define el sexo de la mascota.
type Sex string

const (
	SexMale    Sex = "Macho"
	SexFemale  Sex = "Hembra"
	SexUnknown Sex = ""
)

const DefaultBreed = "Mestizo"

// Pet no tiene identidad propia: vive dentro de la lista de su dueño y se
// trata como valor.
type Pet struct {
	Name    string
	Species Species
	Age     int     // años
	Weight  float64 // kg
	Breed   string
	Color   string
	Sex     Sex
}

// Describe arma la ficha de la mascota para reportes.
func (p Pet) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mascota: %s (%s)\n", p.Name, p.Species)
	fmt.Fprintf(&b, "Edad:    %d año(s)\n", p.Age)
	fmt.Fprintf(&b, "Peso:    %.1f kg\n", p.Weight)
	if p.Breed != "" {
		fmt.Fprintf(&b, "Raza:    %s\n", p.Breed)
	}
	if p.Color != "" {
		fmt.Fprintf(&b, "Color:   %s\n", p.Color)
	}
	if p.Sex != SexUnknown {
		fmt.Fprintf(&b, "Sexo:    %s\n", p.Sex)
	}
	return strings.TrimRight(b.String(), "\n")
}
