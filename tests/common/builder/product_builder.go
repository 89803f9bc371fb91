//go:build unit || e2e

package builder

import (
	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/domain/reservation"
)

type ProductBuilder struct {
	ID          string
	Name        string
	Description string
	PricePerDay int64
	Category    product.Category
	ImageURLs   []string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          "7",
		Name:        "Guitarra Fender CD60s",
		Description: "Acoustic dreadnought guitar",
		PricePerDay: 30000,
		Category:    product.Category{ID: "1", Name: "Cuerdas"},
		ImageURLs:   []string{"/images/cd60s.jpg"},
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildDomain() (product.Product, error) {
	images := make([]product.Image, 0, len(p.ImageURLs))
	for _, u := range p.ImageURLs {
		images = append(images, product.NewURLImage(u))
	}
	return product.NewProduct(p.ID, p.Name, p.Description, p.PricePerDay, p.Category, images)
}

func (p *ProductBuilder) MustBuildDomain() product.Product {
	prod, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return prod
}

func (p *ProductBuilder) BuildSnapshot() reservation.ProductSnapshot {
	return reservation.ProductSnapshot{ID: p.ID, Name: p.Name, PricePerDay: p.PricePerDay}
}

func (p *ProductBuilder) WithID(id string) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPricePerDay(price int64) *ProductBuilder {
	p.PricePerDay = price
	return p
}

func (p *ProductBuilder) WithCategory(id, name string) *ProductBuilder {
	p.Category = product.Category{ID: id, Name: name}
	return p
}
