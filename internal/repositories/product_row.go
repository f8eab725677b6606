package repositories

import (
	"fmt"
	"time"

	"catalog/internal/models"
	"catalog/pkg/e"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRow is the stored shape of a product.
type productRow struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SKU         string          `gorm:"column:sku;type:varchar(100);uniqueIndex;not null"`
	Category    string          `gorm:"type:varchar(32);not null;index"`
	IsActive    bool            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

func (productRow) TableName() string {
	return "products"
}

// AutoMigrate creates or updates the products table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&productRow{}); err != nil {
		return e.Wrap("failed to migrate products table", err)
	}
	return nil
}

// toPrice converts a domain price to its stored fixed-point form.
func toPrice(price float64) decimal.Decimal {
	return models.RoundPrice(price)
}

func newProductRow(input models.CreateProduct) *productRow {
	return &productRow{
		Name:        input.Name,
		Description: input.Description,
		Price:       toPrice(input.Price),
		SKU:         input.SKU,
		Category:    string(input.Category),
		IsActive:    input.IsActive,
	}
}

// toProduct maps a stored row to the domain record, re-checking the category.
func (r *productRow) toProduct() (*models.Product, error) {
	category := models.Category(r.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("product %d has unknown category %q", r.ID, r.Category)
	}
	return &models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price.InexactFloat64(),
		SKU:         r.SKU,
		Category:    category,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// updateColumns turns a partial update into the column map GORM applies.
func updateColumns(input models.UpdateProduct) map[string]any {
	columns := make(map[string]any)
	if input.Name != nil {
		columns["name"] = *input.Name
	}
	if input.Description.Set {
		if input.Description.Value == nil {
			columns["description"] = gorm.Expr("NULL")
		} else {
			columns["description"] = *input.Description.Value
		}
	}
	if input.Price != nil {
		columns["price"] = toPrice(*input.Price)
	}
	if input.SKU != nil {
		columns["sku"] = *input.SKU
	}
	if input.Category != nil {
		columns["category"] = string(*input.Category)
	}
	if input.IsActive != nil {
		columns["is_active"] = *input.IsActive
	}
	return columns
}
