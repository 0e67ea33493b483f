// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// sellerRepository implements the domain.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a single seller by their unique ID.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).First(&sellerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByPhone retrieves a single seller by their phone number.
func (repo *sellerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).First(&sellerM, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByOfferedProduct retrieves open sellers whose offered-product list
// contains a case-insensitive match for the given name. The JSON array is
// matched as text, which may overshoot; the ranking layer re-checks each
// candidate. An empty name returns all open sellers.
func (repo *sellerRepository) FindByOfferedProduct(ctx context.Context, productName string) ([]*entity.Seller, error) {
	query := repo.db.WithContext(ctx).Where("is_open = ?", true)
	if productName != "" {
		query = query.Where("offered_products::text ILIKE ?", "%"+productName+"%")
	}

	var sellerMs []*model.SellerModel
	if err := query.Order("created_at").Find(&sellerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sellers by offered product")
	}

	sellers := make([]*entity.Seller, 0, len(sellerMs))
	for _, sellerM := range sellerMs {
		sellers = append(sellers, toSellerDomain(sellerM))
	}

	return sellers, nil
}

// Create persists a new seller entity to the database.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("phone or FSSAI number already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required seller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Update modifies an existing seller entity in the database.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	result := repo.db.WithContext(ctx).Model(&model.SellerModel{}).
		Where("id = ?", seller.ID).
		Select("*").Omit("id", "created_at").
		Updates(sellerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("phone or FSSAI number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	return &entity.Seller{
		ID:              data.ID,
		Name:            data.Name,
		OwnerName:       data.OwnerName,
		Email:           data.Email,
		Phone:           data.Phone,
		PasswordHash:    data.PasswordHash,
		Address:         data.Address,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		OfferedProducts: data.OfferedProducts,
		Categories:      data.Categories,
		FssaiNumber:     data.FssaiNumber,
		UpiID:           data.UpiID,
		IsOpen:          data.IsOpen,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	return &model.SellerModel{
		ID:              data.ID,
		Name:            data.Name,
		OwnerName:       data.OwnerName,
		Email:           data.Email,
		Phone:           data.Phone,
		PasswordHash:    data.PasswordHash,
		Address:         data.Address,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		OfferedProducts: data.OfferedProducts,
		Categories:      data.Categories,
		FssaiNumber:     data.FssaiNumber,
		UpiID:           data.UpiID,
		IsOpen:          data.IsOpen,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
