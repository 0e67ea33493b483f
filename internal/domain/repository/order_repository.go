package repository

import (
	"context"
	"errors"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByBuyer retrieves all orders placed by the given buyer, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// FindBySeller retrieves all orders addressed to the given seller, newest first.
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)

	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus changes the lifecycle state of an existing order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
