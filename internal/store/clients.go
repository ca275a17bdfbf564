// Package store holds the adapters between the domain and the document
// collections. Every adapter is constructed with an explicit *gorm.DB; there
// is no package-level connection.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("store: record not found")

// ClientStore is the CRUD adapter for the clients collection.
type ClientStore struct {
	db *gorm.DB
}

// NewClientStore constructs ClientStore.
func NewClientStore(db *gorm.DB) *ClientStore {
	return &ClientStore{db: db}
}

// List returns all clients, newest first.
func (s *ClientStore) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Get loads a single client by ID.
func (s *ClientStore) Get(ctx context.Context, id uuid.UUID) (models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, ErrNotFound
		}
		return client, err
	}
	return client, nil
}

// Save creates the client when it has no ID yet, otherwise updates the
// existing record with merge semantics: zero-valued fields in the incoming
// struct leave the stored columns untouched.
func (s *ClientStore) Save(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		return s.db.WithContext(ctx).Create(client).Error
	}

	res := s.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(client)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a client by ID.
func (s *ClientStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error
}
