package usecase

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is a single requested line item.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
}

// PlaceOrderInput carries everything needed to place an order.
type PlaceOrderInput struct {
	Items           []OrderItemInput `json:"products"`
	SellerID        uuid.UUID        `json:"sellerId"`
	BuyerID         uuid.UUID        `json:"buyerId"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	ShippingAddress string           `json:"shippingAddress"`
}

// RewardOutcome reports what happened to the best-effort eco-points step of
// order placement. Failed is true when the order itself succeeded but the
// wallet could not be credited; the order is never rolled back for it.
type RewardOutcome struct {
	PointsAwarded int                  `json:"ecoFriendlyPointsAwarded"`
	Wallet        *entity.CreditWallet `json:"creditWallet"`
	Failed        bool                 `json:"-"`
}

// PlaceOrderOutput is the primary order result plus the secondary reward outcome.
type PlaceOrderOutput struct {
	Order  *entity.Order `json:"order"`
	Reward RewardOutcome `json:"-"`
}

// OrderUsecase defines order placement and lifecycle use cases.
type OrderUsecase interface {
	// PlaceOrder persists a new Pending order, then credits eco points as a
	// best-effort side effect. Wallet failures surface in the RewardOutcome
	// and never fail the placement.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// CancelOrder cancels an order. Allowed from Pending only.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus advances an order along its fulfillment lifecycle.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// GetBuyerOrders lists a buyer's orders, newest first.
	GetBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// GetSellerOrders lists a seller's incoming orders, newest first.
	GetSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)
}
