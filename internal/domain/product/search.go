package product

import "strings"

const DefaultPerPage = 8

type Filter struct {
	Query      string
	CategoryID string
	Page       int
	PerPage    int
}

type Page struct {
	Items      []Product
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Search filters by case-insensitive name match and category, then paginates.
// Pages are 1-based; an out-of-range page yields no items.
func Search(products []Product, f Filter) Page {
	perPage := f.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if !p.InCategory(f.CategoryID) {
			continue
		}
		matched = append(matched, p)
	}

	totalPages := len(matched) / perPage
	if len(matched)%perPage != 0 {
		totalPages++
	}
	items := []Product{}
	if page <= totalPages {
		start := (page - 1) * perPage
		end := min(start+perPage, len(matched))
		items = matched[start:end]
	}

	return Page{
		Items:      items,
		Total:      len(matched),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
