package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/models"
)

// ProductStore is the CRUD adapter for the products collection.
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore constructs ProductStore.
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// List returns all products, newest first.
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get loads a single product by ID.
func (s *ProductStore) Get(ctx context.Context, id uuid.UUID) (models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product, ErrNotFound
		}
		return product, err
	}
	return product, nil
}

// FindByReference looks up a product by exact reference, case-insensitively.
func (s *ProductStore) FindByReference(ctx context.Context, reference string) (models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Where("LOWER(reference) = ?", strings.ToLower(reference)).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product, ErrNotFound
		}
		return product, err
	}
	return product, nil
}

// Count returns the number of catalog entries.
func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

// Save persists a product. With an ID set the matching record is updated
// directly. Without one, an existing product with the same reference is
// updated in place so re-submitting a reference never duplicates the catalog
// entry; only a novel reference creates a new record.
//
// The returned flag reports whether a new record was created.
//
// Known limitation: the reference lookup and the write are two separate
// statements. Two concurrent saves of the same new reference can both miss
// the lookup and create duplicates.
func (s *ProductStore) Save(ctx context.Context, product *models.Product) (bool, error) {
	db := s.db.WithContext(ctx)

	if product.ID == uuid.Nil {
		existing, err := s.FindByReference(ctx, product.Reference)
		switch {
		case err == nil:
			product.ID = existing.ID
		case errors.Is(err, ErrNotFound):
			return true, db.Create(product).Error
		default:
			return false, err
		}
	}

	res := db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(product)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, ErrNotFound
	}
	return false, nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
