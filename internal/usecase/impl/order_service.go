package impl

import (
	"context"
	"log/slog"
	"time"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo repository.OrderRepository
	wallet    usecase.WalletUsecase
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	wallet usecase.WalletUsecase,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		wallet:    wallet,
		logger:    logger,
	}
}

// PlaceOrder persists a Pending order and then credits eco points as a
// best-effort side effect. The reward step can fail without failing the
// placement; its outcome is reported separately so callers can observe it.
func (s *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
		})
	}

	order := &entity.Order{
		ID:              uuid.New(),
		BuyerID:         input.BuyerID,
		SellerID:        input.SellerID,
		Items:           items,
		TotalPrice:      input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		Status:          entity.OrderStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to persist order")
	}

	return &usecase.PlaceOrderOutput{
		Order:  order,
		Reward: s.creditEcoPoints(ctx, order),
	}, nil
}

// creditEcoPoints runs the secondary reward step. Errors are absorbed into
// the outcome; the order placement already succeeded.
func (s *orderService) creditEcoPoints(ctx context.Context, order *entity.Order) usecase.RewardOutcome {
	points, err := s.wallet.ComputeEcoPoints(ctx, order.Items)
	if err != nil {
		s.logger.Error("eco-points computation failed, order unaffected",
			slog.String("orderId", order.ID.String()),
			slog.Any("error", err))

		return usecase.RewardOutcome{Failed: true}
	}

	if points == 0 {
		return usecase.RewardOutcome{}
	}

	wallet, err := s.wallet.AwardPoints(ctx, order.BuyerID, points)
	if err != nil {
		s.logger.Error("eco-points award failed, order unaffected",
			slog.String("orderId", order.ID.String()),
			slog.String("buyerId", order.BuyerID.String()),
			slog.Int("points", points),
			slog.Any("error", err))

		return usecase.RewardOutcome{Failed: true}
	}

	return usecase.RewardOutcome{PointsAwarded: points, Wallet: wallet}
}

// CancelOrder cancels a Pending order. Any other state is rejected.
func (s *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.transition(ctx, orderID, entity.OrderStatusCancelled)
}

// UpdateOrderStatus advances an order along its fulfillment lifecycle.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + status.String())
	}

	return s.transition(ctx, orderID, status)
}

func (s *orderService) transition(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails(
			"cannot change " + order.Status.String() + " to " + next.String())
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	order.Status = next
	order.UpdatedAt = time.Now()

	return order, nil
}

// GetBuyerOrders lists a buyer's orders, newest first.
func (s *orderService) GetBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// GetSellerOrders lists a seller's incoming orders, newest first.
func (s *orderService) GetSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller orders")
	}

	return orders, nil
}

func validatePlaceOrderInput(input *usecase.PlaceOrderInput) error {
	switch {
	case len(input.Items) == 0:
		return domainerrors.ErrMissingFields.WithDetails("products are required")
	case input.SellerID == uuid.Nil:
		return domainerrors.ErrMissingFields.WithDetails("sellerId is required")
	case input.BuyerID == uuid.Nil:
		return domainerrors.ErrMissingFields.WithDetails("buyerId is required")
	case !input.TotalAmount.IsPositive():
		return domainerrors.ErrMissingFields.WithDetails("totalAmount is required")
	case input.ShippingAddress == "":
		return domainerrors.ErrMissingFields.WithDetails("shippingAddress is required")
	}

	for _, item := range input.Items {
		if item.ProductID == uuid.Nil || item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("each product needs an id and a positive quantity")
		}
	}

	return nil
}
