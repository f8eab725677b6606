package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// Lookups never return a nil product without an error: absence is e.ErrNotFound.
type ProductRepository interface {
	Create(ctx context.Context, input models.CreateProduct) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	FindAll(ctx context.Context, filter models.ProductFilter, pagination models.Pagination) (*models.Paginated[models.Product], error)
	Update(ctx context.Context, id uint, input models.UpdateProduct) error
	Delete(ctx context.Context, id uint) error
}
