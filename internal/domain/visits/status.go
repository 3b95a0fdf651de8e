package visits

import "strings"

type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusScheduled  Status = "Programada"
	StatusDone       Status = "Realizada"
	StatusCancelled  Status = "Cancelada"
	StatusPaid       Status = "Pagada"
	StatusInProgress Status = "En Proceso"
)

// ParseStatus normaliza el texto libre. Lo desconocido queda Pendiente.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "programada":
		return StatusScheduled
	case "realizada", "completada":
		return StatusDone
	case "cancelada":
		return StatusCancelled
	case "pagada":
		return StatusPaid
	case "en proceso", "enproceso":
		return StatusInProgress
	default:
		return StatusPending
	}
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusScheduled, StatusDone, StatusCancelled, StatusPaid, StatusInProgress}
}

// Assignable son los estados que se pueden fijar a mano.
func Assignable() []Status {
	return []Status{StatusPending, StatusScheduled, StatusInProgress}
}

// IsFinal: el estado ya no cambia.
func (s Status) IsFinal() bool {
	return s == StatusDone || s == StatusCancelled || s == StatusPaid
}

func (s Status) NeedsAttention() bool {
	return s == StatusPending
}
