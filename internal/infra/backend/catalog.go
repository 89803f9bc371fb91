package backend

import (
	"context"
	"log/slog"
	"net/http"

	"rental-storefront/internal/domain/product"
)

func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var rows []productDTO
	if err := c.do(ctx, http.MethodGet, "/api/public/products", "", nil, &rows); err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed product",
				slog.String("product_id", row.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]product.Category, error) {
	var rows []categoryDTO
	if err := c.do(ctx, http.MethodGet, "/api/public/categories", "", nil, &rows); err != nil {
		return nil, err
	}

	categories := make([]product.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toDomain())
	}
	return categories, nil
}
