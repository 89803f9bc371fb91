package response

import "rental-storefront/internal/usecase"

// FavoritesResponse lists favorite ids and the catalog products they resolve to.
// Ids missing from the catalog snapshot only appear in Favorites.
type FavoritesResponse struct {
	Favorites []string          `json:"favorites"`
	Products  []ProductResponse `json:"products"`
}

type FavoriteStatusResponse struct {
	ProductID  string `json:"productId"`
	IsFavorite bool   `json:"isFavorite"`
}

type ToggleResponse struct {
	ProductID  string `json:"productId"`
	IsFavorite bool   `json:"isFavorite"`
	Phase      string `json:"phase"`
	LocalOnly  bool   `json:"localOnly"`
	Error      string `json:"error,omitempty"`
}

func FromToggle(r usecase.ToggleResult) ToggleResponse {
	return ToggleResponse{
		ProductID:  r.ProductID,
		IsFavorite: r.IsFavorite,
		Phase:      r.Phase.String(),
		LocalOnly:  r.LocalOnly,
	}
}
