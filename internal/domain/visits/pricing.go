package visits

import "vet-clinic/internal/platform/bizkey"

const (
	DefaultBaseCost = 20000.0

	includedMinutes   = 30
	surchargeBlock    = 10
	surchargePerBlock = 500.0

	MultiPetDiscount = 0.15
)

// ServiceType es una fila del tarifario.
type ServiceType struct {
	Option int
	Name   string
	Base   float64
}

// ServiceTypes es el tarifario en orden de menú.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		{1, "Consulta General", 25000},
		{2, "Vacunación", 15000},
		{3, "Cirugía Menor", 80000},
		{4, "Cirugía Mayor", 250000},
		{5, "Emergencia", 50000},
		{6, "Control", 18000},
		{7, "Desparasitación", 12000},
	}
}

// ServiceName devuelve el nombre de la opción de menú; una opción
// desconocida cae en "Consulta General".
func ServiceName(option int) string {
	for _, st := range ServiceTypes() {
		if st.Option == option {
			return st.Name
		}
	}
	return "Consulta General"
}

func BaseCost(serviceType string) float64 {
	key := bizkey.Fold(serviceType)
	for _, st := range ServiceTypes() {
		if bizkey.Fold(st.Name) == key {
			return st.Base
		}
	}
	return DefaultBaseCost
}

// Cost = base + bloques completos de 10 minutos sobre los primeros 30,
// a 500 cada uno. Los bloques parciales no se cobran.
func Cost(serviceType string, minutes int) float64 {
	cost := BaseCost(serviceType)
	if minutes > includedMinutes {
		blocks := (minutes - includedMinutes) / surchargeBlock
		cost += float64(blocks) * surchargePerBlock
	}
	return cost
}

// ApplyMultiPetDiscount descuenta 15% cuando se atiende más de una mascota.
func ApplyMultiPetDiscount(cost float64, pets int) float64 {
	if pets <= 1 {
		return cost
	}
	return cost - cost*MultiPetDiscount
}
