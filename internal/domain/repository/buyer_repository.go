package repository

import (
	"context"
	"errors"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrBuyerNotFound is a domain-specific error returned when a buyer is not found.
	ErrBuyerNotFound = errors.New("buyer not found")

	// ErrInsufficientPoints is returned when a redemption asks for more
	// points than the wallet currently holds.
	ErrInsufficientPoints = errors.New("insufficient credit points")
)

// BuyerRepository defines the standard operations for buyer persistence,
// including the atomic credit-wallet mutations.
type BuyerRepository interface {
	// FindByID retrieves a single buyer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// FindByPhone retrieves a single buyer by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Buyer, error)

	// Create persists a new buyer entity to the storage.
	Create(ctx context.Context, buyer *entity.Buyer) error

	// Update modifies an existing buyer entity in the storage.
	Update(ctx context.Context, buyer *entity.Buyer) error

	// AwardWalletPoints atomically adds points to both the balance and the
	// lifetime-earned counter of the buyer's wallet, and returns the wallet
	// after the update. Points must be positive.
	AwardWalletPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error)

	// RedeemWalletPoints atomically moves points from the balance to the
	// lifetime-used counter, guarded so the balance can never go negative.
	// Returns ErrInsufficientPoints when the balance is too low and the
	// wallet is left unchanged.
	RedeemWalletPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error)
}
