package backend

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/usecase"
)

// flexID accepts ids encoded as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string {
	return string(f)
}

// amount reads a money value that may be encoded with decimals.
func amount(values ...json.Number) int64 {
	for _, n := range values {
		if n == "" {
			continue
		}
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(math.Round(f))
		}
	}
	return 0
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", reservation.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

type categoryDTO struct {
	ID          flexID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c categoryDTO) toDomain() product.Category {
	return product.Category{ID: c.ID.String(), Name: c.Name, Description: c.Description}
}

type imageDTO struct {
	ImageData string `json:"imageData"`
	URL       string `json:"url"`
}

type productDTO struct {
	ID          flexID       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       json.Number  `json:"price"`
	PricePerDay json.Number  `json:"pricePerDay"`
	Category    *categoryDTO `json:"category"`
	CategoryID  flexID       `json:"categoryId"`
	Images      []imageDTO   `json:"images"`
}

func (p productDTO) toDomain() (product.Product, error) {
	var cat product.Category
	if p.Category != nil {
		cat = p.Category.toDomain()
	}
	if cat.ID == "" {
		cat.ID = p.CategoryID.String()
	}
	images := make([]product.Image, 0, len(p.Images))
	for _, img := range p.Images {
		if img.ImageData != "" {
			images = append(images, product.NewInlineImage(img.ImageData))
			continue
		}
		images = append(images, product.NewURLImage(img.URL))
	}
	return product.NewProduct(p.ID.String(), p.Name, p.Description, amount(p.PricePerDay, p.Price), cat, images)
}

type userDTO struct {
	ID      flexID `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (u userDTO) toRecord() usecase.UserRecord {
	return usecase.UserRecord{
		ID:      u.ID.String(),
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Role:    u.Role,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string   `json:"token"`
	AccessToken string   `json:"accessToken"`
	User        *userDTO `json:"user"`
}

// favoriteEntry is a product id, bare or wrapped in an object.
type favoriteEntry string

func (f *favoriteEntry) UnmarshalJSON(b []byte) error {
	var id flexID
	if err := id.UnmarshalJSON(b); err == nil {
		*f = favoriteEntry(id)
		return nil
	}
	var obj struct {
		ProductID flexID `json:"productId"`
		Product   *struct {
			ID flexID `json:"id"`
		} `json:"product"`
		ID flexID `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	switch {
	case obj.ProductID != "":
		*f = favoriteEntry(obj.ProductID)
	case obj.Product != nil && obj.Product.ID != "":
		*f = favoriteEntry(obj.Product.ID)
	default:
		*f = favoriteEntry(obj.ID)
	}
	return nil
}

type createReservationRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type createReservationResponse struct {
	ID            flexID `json:"id"`
	ReservationID flexID `json:"reservationId"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

func (r createReservationResponse) toConfirmation() reservation.Confirmation {
	id := r.ReservationID
	if id == "" {
		id = r.ID
	}
	return reservation.Confirmation{
		ReservationID: id.String(),
		Status:        reservation.ParseStatus(r.Status),
		CreatedAt:     parseTime(r.CreatedAt),
	}
}

type reservationDTO struct {
	ID          flexID      `json:"id"`
	ProductID   flexID      `json:"productId"`
	ProductName string      `json:"productName"`
	Product     *productDTO `json:"product"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	TotalDays   int         `json:"totalDays"`
	PricePerDay json.Number `json:"pricePerDay"`
	TotalPrice  json.Number `json:"totalPrice"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
}

func (r reservationDTO) toDomain() (reservation.Record, bool) {
	start, err := reservation.ParseDateLoose(r.StartDate)
	if err != nil {
		return reservation.Record{}, false
	}
	end, err := reservation.ParseDateLoose(r.EndDate)
	if err != nil {
		return reservation.Record{}, false
	}
	rec := reservation.Record{
		ReservationID: r.ID.String(),
		ProductID:     r.ProductID.String(),
		ProductName:   r.ProductName,
		StartDate:     start,
		EndDate:       end,
		TotalDays:     r.TotalDays,
		PricePerDay:   amount(r.PricePerDay),
		TotalPrice:    amount(r.TotalPrice),
		Customer: reservation.Customer{
			Name:    r.Name,
			Surname: r.Surname,
			Email:   r.Email,
			Address: r.Address,
			Phone:   r.Phone,
		},
		CreatedAt: parseTime(r.CreatedAt),
		Status:    reservation.ParseStatus(r.Status),
	}
	if r.Product != nil {
		if rec.ProductID == "" {
			rec.ProductID = r.Product.ID.String()
		}
		if rec.ProductName == "" {
			rec.ProductName = r.Product.Name
		}
		if rec.PricePerDay == 0 {
			rec.PricePerDay = amount(r.Product.PricePerDay, r.Product.Price)
		}
	}
	return rec.Complete(), true
}
