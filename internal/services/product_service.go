package services

import (
	"context"
	"errors"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/e"

	"github.com/sirupsen/logrus"
)

// ProductEventPublisher receives product lifecycle events.
type ProductEventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
// It owns the SKU uniqueness and existence checks; storage stays behind the repository.
type ProductService struct {
	repo   repositories.ProductRepository
	events ProductEventPublisher
	log    logrus.FieldLogger
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events ProductEventPublisher, log logrus.FieldLogger) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// CreateProduct creates a product with a fresh SKU and returns the stored record.
func (s *ProductService) CreateProduct(ctx context.Context, input models.CreateProduct) (*models.Product, error) {
	_, err := s.repo.FindBySKU(ctx, input.SKU)
	switch {
	case err == nil:
		return nil, e.Conflict("product with SKU '%s' already exists", input.SKU)
	case !errors.Is(err, e.ErrNotFound):
		return nil, s.mask(err, "failed to create product", logrus.Fields{"sku": input.SKU})
	}

	if err := s.repo.Create(ctx, input); err != nil {
		if errors.Is(err, e.ErrConflict) {
			return nil, err
		}
		return nil, s.mask(err, "failed to create product", logrus.Fields{"sku": input.SKU})
	}

	product, err := s.repo.FindBySKU(ctx, input.SKU)
	if err != nil {
		return nil, s.mask(err, "failed to create product", logrus.Fields{"sku": input.SKU})
	}

	s.publish(models.ProductCreated, product)
	return product, nil
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// GetProducts lists products matching filter.
func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter, pagination models.Pagination) (*models.Paginated[models.Product], error) {
	return s.repo.FindAll(ctx, filter, pagination)
}

// UpdateProduct applies a partial update and returns the stored record.
// A missing product is reported before any SKU collision.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input models.UpdateProduct) (*models.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	if input.SKU != nil {
		existing, err := s.repo.FindBySKU(ctx, *input.SKU)
		switch {
		case err == nil && existing.ID != id:
			return nil, e.Conflict("product with SKU '%s' already exists", *input.SKU)
		case err != nil && !errors.Is(err, e.ErrNotFound):
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		if errors.Is(err, e.ErrConflict) {
			return nil, err
		}
		return nil, s.mask(err, "failed to update product", logrus.Fields{"product_id": id})
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mask(err, "failed to update product", logrus.Fields{"product_id": id})
	}

	s.publish(models.ProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mask(err, "failed to delete product", logrus.Fields{"product_id": id})
	}

	s.publish(models.ProductDeleted, product)
	return nil
}

// mask logs the underlying cause and returns a validation error that hides it.
func (s *ProductService) mask(cause error, msg string, fields logrus.Fields) error {
	s.log.WithFields(fields).WithError(cause).Warn(msg)
	return e.Validation("%s", msg)
}

// publish emits a lifecycle event. Failures are logged, never returned.
func (s *ProductService) publish(eventType models.ProductEventType, product *models.Product) {
	if s.events == nil {
		return
	}
	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  product.ID,
		SKU:        product.SKU,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishProductEvent(event); err != nil {
		s.log.WithFields(logrus.Fields{
			"event":      eventType,
			"product_id": product.ID,
		}).WithError(err).Warn("failed to publish product event")
	}
}
