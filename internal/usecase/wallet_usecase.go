package usecase

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// PointValue is the fixed conversion rate: one credit point is worth
	// ten currency units when redeemed against a payment.
	PointValue = 10

	// EcoUnitsPerPoint is how many eco-friendly units must be purchased to
	// earn one credit point. Fractional remainders are dropped, not carried
	// over across orders.
	EcoUnitsPerPoint = 100
)

// RedeemPointsOutput is the result of applying credit points to a payment.
type RedeemPointsOutput struct {
	Wallet         entity.CreditWallet `json:"creditWallet"`
	PointsUsed     int                 `json:"pointsUsed"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
}

// WalletOutput is the snapshot returned by the wallet lookup endpoint.
type WalletOutput struct {
	Wallet     entity.CreditWallet `json:"creditWallet"`
	EcoPoints  int                 `json:"ecoPoints"`
	PointValue int                 `json:"pointValue"`
}

// WalletUsecase defines the credit-wallet use cases: point accrual from
// eco-friendly purchases and redemption against payments.
type WalletUsecase interface {
	// ComputeEcoPoints resolves each line item's product and totals the
	// eco-friendly units purchased; one point is earned per EcoUnitsPerPoint
	// units, floored. Items whose product cannot be resolved contribute
	// nothing.
	ComputeEcoPoints(ctx context.Context, items []entity.OrderItem) (int, error)

	// AwardPoints credits points to the buyer's wallet. A zero points value
	// is a no-op and returns nil without touching the store.
	AwardPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error)

	// RedeemPoints debits pointsToUse from the buyer's wallet and returns
	// the discount amount at the fixed conversion rate.
	RedeemPoints(ctx context.Context, buyerID uuid.UUID, pointsToUse int) (*RedeemPointsOutput, error)

	// GetWallet returns the buyer's current wallet snapshot.
	GetWallet(ctx context.Context, buyerID uuid.UUID) (*WalletOutput, error)
}
