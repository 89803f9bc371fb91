package reservation

import (
	"errors"
	"strings"
	"time"

	"rental-storefront/internal/domain/user"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrStartBeforeToday = errors.New("start date cannot be before today")
	ErrEndBeforeStart   = errors.New("end date cannot be before start date")
	ErrEndBeforeToday   = errors.New("end date cannot be before today")
)

// ParseDate reads a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseDateLoose accepts both YYYY-MM-DD and RFC 3339 timestamps, keeping only the date.
func ParseDateLoose(s string) (time.Time, error) {
	if t, err := ParseDate(s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return AsDate(t), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AsDate drops the clock part, keeping the calendar date of t in its own location.
func AsDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Customer holds the contact fields collected by the reservation form. All are required.
type Customer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (c Customer) Normalize() Customer {
	return Customer{
		Name:    strings.TrimSpace(c.Name),
		Surname: strings.TrimSpace(c.Surname),
		Email:   strings.TrimSpace(c.Email),
		Address: strings.TrimSpace(c.Address),
		Phone:   strings.TrimSpace(c.Phone),
	}
}

// MissingFields lists required fields that are blank, in form order.
func (c Customer) MissingFields() []string {
	c = c.Normalize()
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"surname", c.Surname},
		{"email", c.Email},
		{"address", c.Address},
		{"phone", c.Phone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// InvalidFields lists fields that are present but malformed.
func (c Customer) InvalidFields() []string {
	c = c.Normalize()
	if c.Email != "" && !user.IsValidEmail(c.Email) {
		return []string{"email"}
	}
	return nil
}
