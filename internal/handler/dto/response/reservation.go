package response

import (
	"time"

	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type QuoteResponse struct {
	TotalDays   int   `json:"totalDays"`
	PricePerDay int64 `json:"pricePerDay"`
	TotalPrice  int64 `json:"totalPrice"`
}

type ReservedProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PricePerDay int64  `json:"pricePerDay"`
}

type ReservationRecordResponse struct {
	ReservationID string           `json:"reservationId"`
	ProductID     string           `json:"productId"`
	ProductName   string           `json:"productName,omitempty"`
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	TotalDays     int              `json:"totalDays"`
	PricePerDay   int64            `json:"pricePerDay"`
	TotalPrice    int64            `json:"totalPrice"`
	Customer      CustomerResponse `json:"customer"`
	CreatedAt     *time.Time       `json:"createdAt,omitempty"`
	Status        string           `json:"status"`
}

type WorkflowResponse struct {
	ID           string                     `json:"id"`
	Phase        string                     `json:"phase"`
	Product      ReservedProductResponse    `json:"product"`
	StartDate    *string                    `json:"startDate"`
	EndDate      *string                    `json:"endDate"`
	Customer     CustomerResponse           `json:"customer"`
	Quote        *QuoteResponse             `json:"quote,omitempty"`
	ErrorMessage string                     `json:"errorMessage,omitempty"`
	Reservation  *ReservationRecordResponse `json:"reservation,omitempty"`
	MinStartDate string                     `json:"minStartDate"`
	MinEndDate   string                     `json:"minEndDate"`
	CanSubmit    bool                       `json:"canSubmit"`
}

func FromQuote(q reservation.Quote) QuoteResponse {
	var res QuoteResponse
	_ = copier.Copy(&res, &q)
	return res
}

func fromCustomer(c reservation.Customer) CustomerResponse {
	var res CustomerResponse
	_ = copier.Copy(&res, &c)
	return res
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := reservation.FormatDate(*t)
	return &s
}

func FromRecord(r reservation.Record) ReservationRecordResponse {
	return ReservationRecordResponse{
		ReservationID: r.ReservationID,
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		StartDate:     reservation.FormatDate(r.StartDate),
		EndDate:       reservation.FormatDate(r.EndDate),
		TotalDays:     r.TotalDays,
		PricePerDay:   r.PricePerDay,
		TotalPrice:    r.TotalPrice,
		Customer:      fromCustomer(r.Customer),
		Status:        r.Status.String(),
		CreatedAt:     ptr.TimeOrNil(r.CreatedAt),
	}
}

func FromRecords(rs []reservation.Record) []ReservationRecordResponse {
	res := make([]ReservationRecordResponse, len(rs))
	for i, r := range rs {
		res[i] = FromRecord(r)
	}
	return res
}

func FromView(v reservation.View) WorkflowResponse {
	res := WorkflowResponse{
		ID:    v.ID.String(),
		Phase: v.Phase.String(),
		Product: ReservedProductResponse{
			ID:          v.Product.ID,
			Name:        v.Product.Name,
			PricePerDay: v.Product.PricePerDay,
		},
		StartDate:    formatOptionalDate(v.Draft.StartDate),
		EndDate:      formatOptionalDate(v.Draft.EndDate),
		Customer:     fromCustomer(v.Draft.Customer),
		ErrorMessage: v.ErrorMessage,
		MinStartDate: reservation.FormatDate(v.MinStartDate),
		MinEndDate:   reservation.FormatDate(v.MinEndDate),
		CanSubmit:    v.CanSubmit,
	}
	if v.Quote != nil {
		q := FromQuote(*v.Quote)
		res.Quote = &q
	}
	if v.Record != nil {
		rec := FromRecord(*v.Record)
		res.Reservation = &rec
	}
	return res
}
