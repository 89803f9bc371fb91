package request

import "rental-storefront/internal/domain/product"

type ProductQuery struct {
	Query    string `form:"q" binding:"omitempty,max=100"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=10000"`
	PerPage  int    `form:"perPage" binding:"omitempty,min=1,max=100"`
}

func (q ProductQuery) ToFilter() product.Filter {
	return product.Filter{
		Query:      q.Query,
		CategoryID: q.Category,
		Page:       q.Page,
		PerPage:    q.PerPage,
	}
}
