package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/errs"
)

type CatalogUseCase interface {
	Refresh(ctx context.Context) error
	Products() []product.Product
	Categories() []product.Category
	Product(id string) (product.Product, error)
	Search(f product.Filter) product.Page
	RefreshedAt() time.Time
}

// catalogUseCaseImpl holds the catalog snapshot shared by every session.
type catalogUseCaseImpl struct {
	remote   CatalogAPI
	clock    clock.Clock
	pageSize int
	logger   *slog.Logger

	mu          sync.RWMutex
	products    []product.Product
	categories  []product.Category
	refreshedAt time.Time
}

func NewCatalogUseCase(remote CatalogAPI, c clock.Clock, pageSize int, logger *slog.Logger) CatalogUseCase {
	if pageSize <= 0 {
		pageSize = product.DefaultPerPage
	}
	return &catalogUseCaseImpl{
		remote:   remote,
		clock:    c,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Refresh replaces the snapshot only when both lists load; otherwise the
// previous snapshot stays in place.
func (u *catalogUseCaseImpl) Refresh(ctx context.Context) error {
	products, err := u.remote.ListProducts(ctx)
	if err != nil {
		u.logger.Warn("catalog refresh failed", slog.String("list", "products"), slog.String("error", err.Error()))
		return errs.Wrap(err, "list products")
	}
	categories, err := u.remote.ListCategories(ctx)
	if err != nil {
		u.logger.Warn("catalog refresh failed", slog.String("list", "categories"), slog.String("error", err.Error()))
		return errs.Wrap(err, "list categories")
	}

	u.mu.Lock()
	u.products = products
	u.categories = categories
	u.refreshedAt = u.clock.Now()
	u.mu.Unlock()

	u.logger.Info("catalog refreshed",
		slog.Int("products", len(products)),
		slog.Int("categories", len(categories)))
	return nil
}

func (u *catalogUseCaseImpl) Products() []product.Product {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.products)
}

func (u *catalogUseCaseImpl) Categories() []product.Category {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.categories)
}

func (u *catalogUseCaseImpl) Product(id string) (product.Product, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, p := range u.products {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, errs.Mark(ErrProductNotFound, errs.ErrNotFound)
}

func (u *catalogUseCaseImpl) Search(f product.Filter) product.Page {
	if f.PerPage <= 0 {
		f.PerPage = u.pageSize
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return product.Search(u.products, f)
}

func (u *catalogUseCaseImpl) RefreshedAt() time.Time {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.refreshedAt
}
