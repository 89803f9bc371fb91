package backend

import (
	"context"
	"net/http"
)

func (c *Client) ListFavorites(ctx context.Context, token, userID string) ([]string, error) {
	var entries []favoriteEntry
	if err := c.do(ctx, http.MethodGet, pathf("/api/favorites/%s", userID), token, nil, &entries); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != "" {
			ids = append(ids, string(e))
		}
	}
	return ids, nil
}

func (c *Client) AddFavorite(ctx context.Context, token, userID, productID string) error {
	return c.do(ctx, http.MethodPost, pathf("/api/favorites/%s/%s", userID, productID), token, nil, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, token, userID, productID string) error {
	return c.do(ctx, http.MethodDelete, pathf("/api/favorites/%s/%s", userID, productID), token, nil, nil)
}
