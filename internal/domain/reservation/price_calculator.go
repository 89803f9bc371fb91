package reservation

import (
	"errors"
	"time"
)

const day = 24 * time.Hour

var ErrNegativePrice = errors.New("price cannot be negative")

// Quote is derived from the dates and the daily rate; it is never stored on a draft.
type Quote struct {
	TotalDays   int   `json:"totalDays"`
	PricePerDay int64 `json:"pricePerDay"`
	TotalPrice  int64 `json:"totalPrice"`
}

// TotalDays is ceil((end-start)/1 day) with a floor of one day, so same-day
// bookings still bill a full day.
func TotalDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / day)
	if d > 0 && d%day != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

func Price(start, end time.Time, pricePerDay int64) (Quote, error) {
	if pricePerDay < 0 {
		return Quote{}, ErrNegativePrice
	}
	days := TotalDays(start, end)
	return Quote{
		TotalDays:   days,
		PricePerDay: pricePerDay,
		TotalPrice:  int64(days) * pricePerDay,
	}, nil
}
