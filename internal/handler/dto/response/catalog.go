package response

import (
	"time"

	"rental-storefront/internal/domain/product"
)

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	PricePerDay int64            `json:"pricePerDay"`
	Category    CategoryResponse `json:"category"`
	Images      []string         `json:"images"`
	IsFavorite  bool             `json:"isFavorite"`
}

type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	TotalPages int               `json:"totalPages"`
}

type CatalogStatusResponse struct {
	Products    int       `json:"products"`
	Categories  int       `json:"categories"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

func FromCategory(c product.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func FromCategories(cs []product.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		res[i] = FromCategory(c)
	}
	return res
}

// FromProduct resolves image sources against the backend base URL.
func FromProduct(p product.Product, baseURL string, isFavorite func(string) bool) ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if src := img.Src(baseURL); src != "" {
			images = append(images, src)
		}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PricePerDay: p.PricePerDay,
		Category:    FromCategory(p.Category),
		Images:      images,
		IsFavorite:  isFavorite != nil && isFavorite(p.ID),
	}
}

func FromPage(pg product.Page, baseURL string, isFavorite func(string) bool) ProductPageResponse {
	items := make([]ProductResponse, len(pg.Items))
	for i, p := range pg.Items {
		items[i] = FromProduct(p, baseURL, isFavorite)
	}
	return ProductPageResponse{
		Items:      items,
		Total:      pg.Total,
		Page:       pg.Page,
		PerPage:    pg.PerPage,
		TotalPages: pg.TotalPages,
	}
}
