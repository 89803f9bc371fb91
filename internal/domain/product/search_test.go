//go:build unit

package product_test

import (
	"fmt"
	"testing"

	"rental-storefront/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(t *testing.T, n int) []product.Product {
	t.Helper()
	guitars := product.Category{ID: "1", Name: "Cuerdas"}
	basses := product.Category{ID: "2", Name: "Bajos"}
	out := make([]product.Product, 0, n)
	for i := 1; i <= n; i++ {
		cat := guitars
		name := fmt.Sprintf("Guitar %02d", i)
		if i%2 == 0 {
			cat = basses
			name = fmt.Sprintf("Bass %02d", i)
		}
		p, err := product.NewProduct(fmt.Sprint(i), name, "", int64(i*100), cat, nil)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestSearch(t *testing.T) {
	all := catalog(t, 20)

	t.Run("default page size is eight", func(t *testing.T) {
		page := product.Search(all, product.Filter{})
		assert.Len(t, page.Items, 8)
		assert.Equal(t, 20, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("last page is partial", func(t *testing.T) {
		page := product.Search(all, product.Filter{Page: 3})
		assert.Len(t, page.Items, 4)
		assert.Equal(t, "17", page.Items[0].ID)
	})

	t.Run("out of range page is empty", func(t *testing.T) {
		page := product.Search(all, product.Filter{Page: 9})
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
	})

	t.Run("huge page does not overflow", func(t *testing.T) {
		page := product.Search(all, product.Filter{Page: 1 << 61, PerPage: 8})
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1<<61, page.Page)
	})

	t.Run("huge page size returns everything", func(t *testing.T) {
		page := product.Search(all, product.Filter{Page: 1, PerPage: 1 << 62})
		assert.Len(t, page.Items, 20)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("query is case insensitive", func(t *testing.T) {
		page := product.Search(all, product.Filter{Query: "  bass 1"})
		ids := make([]string, 0, len(page.Items))
		for _, p := range page.Items {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"10", "12", "14", "16", "18"}, ids)
	})

	t.Run("category filter", func(t *testing.T) {
		page := product.Search(all, product.Filter{CategoryID: "1", PerPage: 100})
		assert.Equal(t, 10, page.Total)
		for _, p := range page.Items {
			assert.Equal(t, "1", p.Category.ID)
		}
	})
}

func TestNewProduct(t *testing.T) {
	_, err := product.NewProduct(" ", "x", "", 1, product.Category{}, nil)
	assert.ErrorIs(t, err, product.ErrMissingProductID)

	_, err = product.NewProduct("1", "x", "", -1, product.Category{}, nil)
	assert.ErrorIs(t, err, product.ErrNegativePrice)

	p, err := product.NewProduct("1", " x ", "", 1, product.Category{}, []product.Image{
		product.NewURLImage(""),
		product.NewURLImage("/a.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "x", p.Name)
	cover, ok := p.Cover()
	require.True(t, ok)
	assert.Equal(t, "http://api.local/a.jpg", cover.Src("http://api.local/"))
}

func TestImageSrc(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,AAAA", product.NewInlineImage("AAAA").Src(""))
	assert.Equal(t, "data:image/png;base64,BBBB", product.NewInlineImage("data:image/png;base64,BBBB").Src(""))
	assert.Equal(t, "https://cdn/x.jpg", product.NewURLImage("https://cdn/x.jpg").Src("http://api"))
	assert.Empty(t, product.Image{}.Src("http://api"))
}
