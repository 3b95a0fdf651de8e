package pets

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	MaxAge    = 30
	MaxWeight = 200.0
)

type RegisterInput struct {
	Name    string
	Species string
	Age     int
	Weight  float64
	Breed   string
	Color   string
	Sex     string
}

// New valida y normaliza una mascota nueva.
func New(in RegisterInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Age > MaxAge {
		return Pet{}, ErrInvalidInput
	}
	if in.Weight <= 0 || in.Weight > MaxWeight {
		return Pet{}, ErrInvalidInput
	}

	species := Species(strings.TrimSpace(in.Species))
	if species == "" {
		species = SpeciesDog
	}
	breed := strings.TrimSpace(in.Breed)
	if breed == "" {
		breed = DefaultBreed
	}

	return Pet{
		Name:    name,
		Species: species,
		Age:     in.Age,
		Weight:  in.Weight,
		Breed:   breed,
		Color:   strings.TrimSpace(in.Color),
		Sex:     Sex(strings.TrimSpace(in.Sex)),
	}, nil
}
