package postgres

import (
	"context"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// buyerRepository implements the domain.BuyerRepository interface using GORM.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{db: db}
}

// FindByID retrieves a single buyer by their unique ID.
func (repo *buyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).First(&buyerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by id")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByPhone retrieves a single buyer by their phone number.
func (repo *buyerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).First(&buyerM, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by phone")
	}

	return toBuyerDomain(&buyerM), nil
}

// Create persists a new buyer entity to the database.
func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPhoneAlreadyRegistered.WrapMessage("phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required buyer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	buyer.ID = buyerM.ID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// Update modifies an existing buyer entity in the database. The wallet
// columns are deliberately left out; they change only through the atomic
// award and redeem operations below.
func (repo *buyerRepository) Update(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	result := repo.db.WithContext(ctx).Model(&model.BuyerModel{}).
		Where("id = ?", buyer.ID).
		Select("*").
		Omit("id", "created_at", "wallet_points", "wallet_total_earned", "wallet_total_used").
		Updates(buyerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPhoneAlreadyRegistered.WrapMessage("phone already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update buyer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBuyerNotFound
	}

	return nil
}

// AwardWalletPoints atomically credits the balance and the lifetime-earned
// counter in a single UPDATE, then reads the wallet back.
func (repo *buyerRepository) AwardWalletPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error) {
	if points <= 0 {
		return nil, errors.New("points to award must be positive")
	}

	result := repo.db.WithContext(ctx).Model(&model.BuyerModel{}).
		Where("id = ?", buyerID).
		Updates(map[string]any{
			"wallet_points":       gorm.Expr("wallet_points + ?", points),
			"wallet_total_earned": gorm.Expr("wallet_total_earned + ?", points),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to award wallet points")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBuyerNotFound
	}

	return repo.readWallet(ctx, buyerID)
}

// RedeemWalletPoints atomically debits the balance and credits the
// lifetime-used counter. The balance guard lives in the WHERE clause, so a
// wallet with too few points matches no row and stays untouched.
func (repo *buyerRepository) RedeemWalletPoints(ctx context.Context, buyerID uuid.UUID, points int) (*entity.CreditWallet, error) {
	if points <= 0 {
		return nil, errors.New("points to redeem must be positive")
	}

	result := repo.db.WithContext(ctx).Model(&model.BuyerModel{}).
		Where("id = ? AND wallet_points >= ?", buyerID, points).
		Updates(map[string]any{
			"wallet_points":     gorm.Expr("wallet_points - ?", points),
			"wallet_total_used": gorm.Expr("wallet_total_used + ?", points),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to redeem wallet points")
	}
	if result.RowsAffected == 0 {
		// Either the buyer does not exist or the balance is too low.
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.BuyerModel{}).
			Where("id = ?", buyerID).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check buyer existence")
		}
		if count == 0 {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, repository.ErrInsufficientPoints
	}

	return repo.readWallet(ctx, buyerID)
}

func (repo *buyerRepository) readWallet(ctx context.Context, buyerID uuid.UUID) (*entity.CreditWallet, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).
		Select("wallet_points", "wallet_total_earned", "wallet_total_used").
		First(&buyerM, "id = ?", buyerID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read wallet")
	}

	return &entity.CreditWallet{
		Points:      buyerM.WalletPoints,
		TotalEarned: buyerM.WalletTotalEarned,
		TotalUsed:   buyerM.WalletTotalUsed,
	}, nil
}

func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	return &entity.Buyer{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Wallet: entity.CreditWallet{
			Points:      data.WalletPoints,
			TotalEarned: data.WalletTotalEarned,
			TotalUsed:   data.WalletTotalUsed,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	return &model.BuyerModel{
		ID:                data.ID,
		Name:              data.Name,
		Phone:             data.Phone,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Address:           data.Address,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		WalletPoints:      data.Wallet.Points,
		WalletTotalEarned: data.Wallet.TotalEarned,
		WalletTotalUsed:   data.Wallet.TotalUsed,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
