package reservation

import (
	"time"
)

// Draft is the in-progress reservation held by a workflow.
type Draft struct {
	ProductID string
	StartDate *time.Time
	EndDate   *time.Time
	Customer  Customer
}

func (d Draft) HasDates() bool {
	return d.StartDate != nil && d.EndDate != nil
}

// Confirmation is what the backend returns for an accepted submission.
type Confirmation struct {
	ReservationID string
	Status        Status
	CreatedAt     time.Time
}

// Record is a persisted reservation. Read-only on the client.
type Record struct {
	ReservationID string
	ProductID     string
	ProductName   string
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
	PricePerDay   int64
	TotalPrice    int64
	Customer      Customer
	CreatedAt     time.Time
	Status        Status
}

// Complete fills TotalDays and TotalPrice when the backend omitted them.
func (r Record) Complete() Record {
	if r.TotalDays <= 0 {
		r.TotalDays = TotalDays(r.StartDate, r.EndDate)
	}
	if r.TotalPrice <= 0 && r.PricePerDay > 0 {
		r.TotalPrice = int64(r.TotalDays) * r.PricePerDay
	}
	if !r.Status.IsValid() {
		r.Status = StatusPending
	}
	return r
}
