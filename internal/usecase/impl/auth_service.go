package impl

import (
	"context"
	"log/slog"
	"time"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/domain/service"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

type authService struct {
	txManager  repository.TransactionManager
	buyerRepo  repository.BuyerRepository
	sellerRepo repository.SellerRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	txManager repository.TransactionManager,
	buyerRepo repository.BuyerRepository,
	sellerRepo repository.SellerRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:  txManager,
		buyerRepo:  buyerRepo,
		sellerRepo: sellerRepo,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger,
	}
}

const (
	minPasswordLength = 6
	minPhoneLength    = 10
)

func validateCredentials(phone, password string) error {
	if len(phone) < minPhoneLength {
		return domainerrors.ErrValidationFailed.WithDetails("phone number must have at least 10 digits")
	}
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	return nil
}

// RegisterBuyer creates a buyer account and returns a signed credential for it.
func (s *authService) RegisterBuyer(ctx context.Context, input *usecase.RegisterBuyerInput) (*usecase.AuthOutput, error) {
	if input.Name == "" || input.Phone == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WithDetails("name, phone and password are required")
	}

	if err := validateCredentials(input.Phone, input.Password); err != nil {
		return nil, err
	}

	if err := validateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	buyer := &entity.Buyer{
		ID:           uuid.New(),
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Uniqueness check and insert run in one transaction so two concurrent
	// registrations with the same phone cannot both pass the check.
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyerRepo := repoFactory.NewBuyerRepository()

		if _, err := buyerRepo.FindByPhone(ctx, input.Phone); err == nil {
			return domainerrors.ErrPhoneAlreadyRegistered
		} else if !errors.Is(err, repository.ErrBuyerNotFound) {
			return errors.Wrap(err, "failed to check phone uniqueness")
		}

		if err := buyerRepo.Create(ctx, buyer); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to persist buyer")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issue(buyer.ID, entity.RoleBuyer, buyer.Name)
}

// RegisterSeller creates a seller account and returns a signed credential for it.
func (s *authService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.AuthOutput, error) {
	if input.Name == "" || input.Phone == "" || input.Password == "" || input.FssaiNumber == "" {
		return nil, domainerrors.ErrMissingFields.WithDetails("name, phone, password and fssaiNumber are required")
	}

	if err := validateCredentials(input.Phone, input.Password); err != nil {
		return nil, err
	}

	if err := validateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	seller := &entity.Seller{
		ID:              uuid.New(),
		Name:            input.Name,
		OwnerName:       input.OwnerName,
		Phone:           input.Phone,
		Email:           input.Email,
		PasswordHash:    hash,
		Address:         input.Address,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		OfferedProducts: input.OfferedProducts,
		Categories:      input.Categories,
		FssaiNumber:     input.FssaiNumber,
		UpiID:           input.UpiID,
		IsOpen:          true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()

		if _, err := sellerRepo.FindByPhone(ctx, input.Phone); err == nil {
			return domainerrors.ErrPhoneAlreadyRegistered
		} else if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to check phone uniqueness")
		}

		if err := sellerRepo.Create(ctx, seller); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to persist seller")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issue(seller.ID, entity.RoleSeller, seller.Name)
}

// LoginBuyer verifies buyer credentials and returns a signed credential.
// Unknown phone and wrong password are indistinguishable to the caller.
func (s *authService) LoginBuyer(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Phone == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WithDetails("phone and password are required")
	}

	buyer, err := s.buyerRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load buyer")
	}

	if !s.hasher.Check(input.Password, buyer.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issue(buyer.ID, entity.RoleBuyer, buyer.Name)
}

// LoginSeller verifies seller credentials and returns a signed credential.
func (s *authService) LoginSeller(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Phone == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WithDetails("phone and password are required")
	}

	seller, err := s.sellerRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load seller")
	}

	if !s.hasher.Check(input.Password, seller.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issue(seller.ID, entity.RoleSeller, seller.Name)
}

func (s *authService) issue(accountID uuid.UUID, role entity.Role, name string) (*usecase.AuthOutput, error) {
	token, err := s.tokens.GenerateToken(accountID, role)
	if err != nil {
		s.logger.Error("token generation failed",
			slog.String("accountId", accountID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails("failed to issue credential")
	}

	return &usecase.AuthOutput{
		Token:     token,
		Role:      role,
		AccountID: accountID,
		Name:      name,
	}, nil
}
