package reservation

import "strings"

// Phase is the state of a reservation workflow.
type Phase string

const (
	PhaseForm    Phase = "form"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
	PhaseClosed  Phase = "closed"
)

func (p Phase) String() string {
	return string(p)
}

// Status of a persisted reservation as reported by the backend.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus maps backend spellings onto a Status; unknown values are pending.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "confirmed", "in_progress":
		return StatusActive
	case "completed", "finished", "returned":
		return StatusCompleted
	case "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusPending
	}
}
