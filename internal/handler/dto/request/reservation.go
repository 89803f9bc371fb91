package request

import (
	"time"

	"rental-storefront/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

type StartReservationRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// DatesRequest carries YYYY-MM-DD dates; a null or absent date clears it.
type DatesRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func (r *DatesRequest) Parse() (start, end *time.Time, err error) {
	if start, err = parseOptionalDate(r.StartDate); err != nil {
		return nil, nil, err
	}
	if end, err = parseOptionalDate(r.EndDate); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := reservation.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r *CustomerRequest) ToDomain() reservation.Customer {
	var c reservation.Customer
	_ = copier.Copy(&c, r)
	return c
}

type QuoteQuery struct {
	ProductID string `form:"productId" binding:"required"`
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

func (q QuoteQuery) Parse() (start, end time.Time, err error) {
	if start, err = reservation.ParseDate(q.StartDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = reservation.ParseDate(q.EndDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
