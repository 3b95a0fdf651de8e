package summary

import (
	"context"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/vets"
	"vet-clinic/internal/domain/visits"
)

// Source calcula el snapshot desde los services de dominio.
type Source struct {
	Owners *owners.Service
	Visits *visits.Service
	Vets   *vets.Service
}

func (s Source) Compute(ctx context.Context) (Snapshot, error) {
	all, err := s.Owners.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	totalVisits, err := s.Visits.Count(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	pending, err := s.Visits.Pending(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	vs, err := s.Vets.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		TotalVisits:   totalVisits,
		TotalOwners:   len(all),
		PendingVisits: len(pending),
		TotalVets:     len(vs),
		LastOwnerName: NoOwner,
	}
	for _, o := range all {
		snap.TotalPets += o.PetCount()
	}
	if len(all) > 0 {
		snap.LastOwnerName = all[len(all)-1].Name
	}
	return snap, nil
}
