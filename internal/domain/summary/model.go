package summary

import "time"

const (
	NoOwner        = "Ninguno"
	LoadingMessage = "Actualizando estadísticas..."
)

// Snapshot es el resumen que muestra la pantalla de inicio.
type Snapshot struct {
	TotalPets     int
	TotalVisits   int
	LastOwnerName string
	TotalOwners   int
	PendingVisits int
	TotalVets     int
}

type State struct {
	Loading     bool
	Message     string
	Snapshot    Snapshot
	RefreshedAt time.Time
}
