package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog/internal/models"
	"catalog/pkg/e"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

var sortColumns = map[models.SortField]string{
	models.SortByName:      "name",
	models.SortByPrice:     "price",
	models.SortByCreatedAt: "created_at",
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product row.
func (r *GORMProductRepository) Create(ctx context.Context, input models.CreateProduct) error {
	row := newProductRow(input)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return e.Conflict("product with SKU '%s' already exists", input.SKU)
		}
		return e.Wrap("failed to create product", err)
	}
	return nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound("product with ID '%d' not found", id)
		}
		return nil, e.Wrap(fmt.Sprintf("failed to get product by ID %d", id), err)
	}
	return row.toProduct()
}

// FindBySKU retrieves a single product by its SKU.
func (r *GORMProductRepository) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound("product with SKU '%s' not found", sku)
		}
		return nil, e.Wrap(fmt.Sprintf("failed to get product by SKU %s", sku), err)
	}
	return row.toProduct()
}

// FindAll returns one page of the products matching filter.
// The total is counted against the same predicate, independent of the page.
func (r *GORMProductRepository) FindAll(ctx context.Context, filter models.ProductFilter, pagination models.Pagination) (*models.Paginated[models.Product], error) {
	pagination = pagination.Normalize()
	matching := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&productRow{}).Scopes(filterScope(filter))
	}

	var total int64
	if err := matching().Count(&total).Error; err != nil {
		return nil, e.Wrap("failed to count products", err)
	}

	var rows []productRow
	offset := pagination.Offset()
	// a page past the last row is empty without querying
	if int64(offset) < total {
		err := matching().
			Scopes(orderScope(pagination)).
			Offset(offset).
			Limit(pagination.Limit).
			Find(&rows).Error
		if err != nil {
			return nil, e.Wrap("failed to list products", err)
		}
	}

	products := make([]models.Product, 0, len(rows))
	for i := range rows {
		product, err := rows[i].toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	return &models.Paginated[models.Product]{
		Data:   products,
		Paging: models.NewPaging(total, pagination.Page, pagination.Limit),
	}, nil
}

// Update applies the supplied fields to an existing product.
func (r *GORMProductRepository) Update(ctx context.Context, id uint, input models.UpdateProduct) error {
	if input.Empty() {
		_, err := r.FindByID(ctx, id)
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&productRow{}).
		Where("id = ?", id).
		Updates(updateColumns(input))
	if res.Error != nil {
		if isUniqueViolation(res.Error) && input.SKU != nil {
			return e.Conflict("product with SKU '%s' already exists", *input.SKU)
		}
		return e.Wrap("failed to update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return e.NotFound("product with ID '%d' not found", id)
	}
	return nil
}

// Delete removes a product by its ID. Rows are hard deleted.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&productRow{}, "id = ?", id)
	if res.Error != nil {
		return e.Wrap("failed to delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return e.NotFound("product with ID '%d' not found", id)
	}
	return nil
}

func filterScope(filter models.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != nil {
			db = db.Where("category = ?", string(*filter.Category))
		}
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		if filter.Search != "" {
			condition, pattern := searchCondition(db.Dialector.Name(), filter.Search)
			db = db.Where(condition, pattern, pattern, pattern)
		}
		if filter.PriceMin != nil {
			db = db.Where("price >= ?", decimal.NewFromFloat(*filter.PriceMin))
		}
		if filter.PriceMax != nil {
			db = db.Where("price <= ?", decimal.NewFromFloat(*filter.PriceMax))
		}
		return db
	}
}

// searchCondition matches term as a case-insensitive substring of name, description or sku.
// PostgreSQL folds case with ILIKE, which handles non-ASCII letters; other dialects use
// LOWER(...) LIKE, which SQLite only folds for ASCII.
func searchCondition(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return `(name ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\' OR sku ILIKE ? ESCAPE '\')`,
			"%" + likeEscaper.Replace(term) + "%"
	}
	return `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(sku) LIKE ? ESCAPE '\')`,
		"%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func orderScope(pagination models.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := sortColumns[pagination.Sort]
		if !ok {
			column = sortColumns[models.SortByCreatedAt]
		}
		desc := pagination.Order != models.OrderAsc
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
