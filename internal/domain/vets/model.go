package vets

type Veterinarian struct {
	ID              string
	Name            string
	Specialty       string
	License         string
	Phone           string
	Email           string
	Available       bool
	YearsExperience int
}
