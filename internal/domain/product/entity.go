package product

import (
	"errors"
	"strings"
)

var (
	ErrMissingProductID = errors.New("product id is required")
	ErrNegativePrice    = errors.New("price per day cannot be negative")
)

type Category struct {
	ID          string
	Name        string
	Description string
}

// Product is read-only from the storefront's point of view.
type Product struct {
	ID          string
	Name        string
	Description string
	PricePerDay int64
	Category    Category
	Images      []Image
}

func NewProduct(id, name, description string, pricePerDay int64, category Category, images []Image) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrMissingProductID
	}
	if pricePerDay < 0 {
		return Product{}, ErrNegativePrice
	}

	imgs := make([]Image, 0, len(images))
	for _, img := range images {
		if !img.IsEmpty() {
			imgs = append(imgs, img)
		}
	}

	return Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		PricePerDay: pricePerDay,
		Category:    category,
		Images:      imgs,
	}, nil
}

func (p Product) Cover() (Image, bool) {
	if len(p.Images) == 0 {
		return Image{}, false
	}
	return p.Images[0], true
}

func (p Product) InCategory(categoryID string) bool {
	return categoryID == "" || p.Category.ID == categoryID
}
