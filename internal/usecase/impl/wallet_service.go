package impl

import (
	"context"
	"log/slog"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletService struct {
	buyerRepo   repository.BuyerRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewWalletService creates a new credit wallet service instance
func NewWalletService(
	buyerRepo repository.BuyerRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.WalletUsecase {
	return &walletService{
		buyerRepo:   buyerRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// ComputeEcoPoints totals the eco-friendly units across an order's line
// items and converts them to credit points. Eligibility comes from the
// product record itself; there is no separate eligibility table.
func (s *walletService) ComputeEcoPoints(ctx context.Context, items []entity.OrderItem) (int, error) {
	totalEcoUnits := 0

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Unknown products simply earn nothing.
				s.logger.Warn("eco-points: skipping unknown product",
					slog.String("productId", item.ProductID.String()))

				continue
			}

			return 0, errors.Wrap(err, "failed to resolve product for eco points")
		}

		if units := product.EcoUnits(item.Quantity); units > 0 {
			totalEcoUnits += units
			s.logger.Debug("eco-points: counted eco units",
				slog.String("productId", product.ID.String()),
				slog.Int("quantity", item.Quantity),
				slog.Int("units", units))
		}
	}

	return totalEcoUnits / usecase.EcoUnitsPerPoint, nil
}

// AwardPoints credits the buyer's wallet through an atomic increment so the
// earned/used invariants hold under concurrent requests.
func (s *walletService) AwardPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error) {
	if points <= 0 {
		return nil, nil
	}

	wallet, err := s.buyerRepo.AwardWalletPoints(ctx, buyerID, points)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.ErrBuyerNotFound.WrapMessage("cannot award points")
		}

		return nil, errors.Wrap(err, "failed to award wallet points")
	}

	return wallet, nil
}

// RedeemPoints debits the wallet and reports the discount at the fixed
// conversion rate. The conditional update in the repository guarantees the
// balance never goes negative and an insufficient wallet stays unchanged.
func (s *walletService) RedeemPoints(ctx context.Context, buyerID uuid.UUID, pointsToUse int) (*usecase.RedeemPointsOutput, error) {
	if pointsToUse <= 0 {
		return nil, domainerrors.ErrInvalidPointsAmount
	}

	wallet, err := s.buyerRepo.RedeemWalletPoints(ctx, buyerID, pointsToUse)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientPoints):
			return nil, domainerrors.ErrInsufficientPoints
		case errors.Is(err, repository.ErrBuyerNotFound):
			return nil, domainerrors.ErrBuyerNotFound
		default:
			return nil, errors.Wrap(err, "failed to redeem wallet points")
		}
	}

	return &usecase.RedeemPointsOutput{
		Wallet:         *wallet,
		PointsUsed:     pointsToUse,
		DiscountAmount: decimal.NewFromInt(int64(pointsToUse * usecase.PointValue)),
	}, nil
}

// GetWallet returns the buyer's wallet snapshot for the lookup endpoint.
func (s *walletService) GetWallet(ctx context.Context, buyerID uuid.UUID) (*usecase.WalletOutput, error) {
	buyer, err := s.buyerRepo.FindByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to load buyer wallet")
	}

	return &usecase.WalletOutput{
		Wallet:     buyer.Wallet,
		EcoPoints:  buyer.Wallet.Points,
		PointValue: usecase.PointValue,
	}, nil
}
