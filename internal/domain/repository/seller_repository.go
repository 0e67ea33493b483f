// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is a domain-specific error returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
// The application layer will depend on this interface, not the concrete implementation.
type SellerRepository interface {
	// FindByID retrieves a single seller by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByPhone retrieves a single seller by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Seller, error)

	// FindByOfferedProduct retrieves sellers whose offered-product list
	// contains a case-insensitive match for the given name. An empty name
	// returns all sellers. Results keep the store's natural order so the
	// ranking layer can break distance ties deterministically.
	FindByOfferedProduct(ctx context.Context, productName string) ([]*entity.Seller, error)

	// Create persists a new seller entity to the storage.
	Create(ctx context.Context, seller *entity.Seller) error

	// Update modifies an existing seller entity in the storage.
	Update(ctx context.Context, seller *entity.Seller) error
}
