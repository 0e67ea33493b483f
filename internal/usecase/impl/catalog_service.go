package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/domain/service"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	images      service.ImageStorage
	qr          service.QRCodeService
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	images service.ImageStorage,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		images:      images,
		qr:          qr,
		logger:      logger,
	}
}

// AddProduct creates a catalog product and links its name into the seller's
// offered-product list so discovery can match on it.
func (s *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	return s.addProduct(ctx, input, "")
}

// AddProductWithImage creates a product with an uploaded photo. The image is
// stored first so a broken upload never leaves a product without its photo.
func (s *catalogService) AddProductWithImage(ctx context.Context, input *usecase.AddProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	if image == nil {
		return s.addProduct(ctx, input, "")
	}

	if err := validateAddProductInput(input); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s%s", input.SellerID, uuid.New(), path.Ext(image.Filename))

	url, err := s.images.Upload(ctx, key, image.ContentType, image.Body)
	if err != nil {
		s.logger.Error("product image upload failed",
			slog.String("sellerId", input.SellerID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrImageUploadFailed
	}

	product, err := s.addProduct(ctx, input, url)
	if err != nil {
		if delErr := s.images.Delete(ctx, key); delErr != nil {
			s.logger.Warn("orphaned product image left in storage",
				slog.String("key", key),
				slog.Any("error", delErr))
		}

		return nil, err
	}

	return product, nil
}

func (s *catalogService) addProduct(ctx context.Context, input *usecase.AddProductInput, imageURL string) (*entity.Product, error) {
	if err := validateAddProductInput(input); err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.FindByID(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to load seller")
	}

	product := &entity.Product{
		ID:            uuid.New(),
		SellerID:      seller.ID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Price:         input.Price,
		Unit:          input.Unit,
		Quantity:      input.Quantity,
		ImageURL:      imageURL,
		IsEcoFriendly: input.IsEcoFriendly,
		UnitsPerPack:  input.UnitsPerPack,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to persist product")
	}

	if !seller.OffersProduct(product.Name) {
		seller.OfferedProducts = append(seller.OfferedProducts, product.Name)
		seller.UpdatedAt = time.Now()

		if err := s.sellerRepo.Update(ctx, seller); err != nil {
			// The product exists either way; discovery just won't match the
			// new name until the list is repaired.
			s.logger.Warn("failed to extend seller's offered-product list",
				slog.String("sellerId", seller.ID.String()),
				slog.String("product", product.Name),
				slog.Any("error", err))
		}
	}

	return product, nil
}

// UpdateProduct applies the non-nil fields of input to an existing product.
func (s *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
		}
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity cannot be negative")
		}
		product.Quantity = *input.Quantity
	}

	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product and its stored photo, if any.
func (s *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product")
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	if key := storageKeyFromURL(product.ImageURL); key != "" {
		if err := s.images.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete product image",
				slog.String("key", key),
				slog.Any("error", err))
		}
	}

	return nil
}

// GetSellerProducts lists a seller's catalog split into available and
// out-of-stock products.
func (s *catalogService) GetSellerProducts(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerProducts, error) {
	products, err := s.productRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	result := &usecase.SellerProducts{
		Available:  make([]*entity.Product, 0, len(products)),
		OutOfStock: make([]*entity.Product, 0),
	}

	for _, product := range products {
		if product.Quantity > 0 {
			result.Available = append(result.Available, product)
		} else {
			result.OutOfStock = append(result.OutOfStock, product)
		}
	}

	return result, nil
}

// GetPaymentQR renders the seller's UPI payment QR code as a PNG image.
func (s *catalogService) GetPaymentQR(ctx context.Context, sellerID uuid.UUID) ([]byte, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load seller")
	}

	if seller.UpiID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seller has no UPI payment address on file")
	}

	png, err := s.qr.GeneratePaymentQR(seller)
	if err != nil {
		s.logger.Error("failed to render payment QR", slog.String("sellerId", sellerID.String()), slog.Any("error", err))
		return nil, domainerrors.ErrInternalError.WithDetails("failed to render payment QR code")
	}

	return png, nil
}

func validateAddProductInput(input *usecase.AddProductInput) error {
	switch {
	case input.SellerID == uuid.Nil:
		return domainerrors.ErrMissingFields.WithDetails("sellerId is required")
	case input.Name == "":
		return domainerrors.ErrMissingFields.WithDetails("name is required")
	case input.Category == "":
		return domainerrors.ErrMissingFields.WithDetails("category is required")
	case input.Unit == "":
		return domainerrors.ErrMissingFields.WithDetails("unit is required")
	case !input.Price.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case input.Quantity < 0:
		return domainerrors.ErrValidationFailed.WithDetails("quantity cannot be negative")
	case input.UnitsPerPack < 0:
		return domainerrors.ErrValidationFailed.WithDetails("unitsPerPack cannot be negative")
	}

	return nil
}

// storageKeyFromURL recovers the storage object key from a public image URL.
// Keys always start with the products/ prefix; anything else is not ours.
func storageKeyFromURL(url string) string {
	const prefix = "products/"

	idx := strings.Index(url, prefix)
	if idx < 0 {
		return ""
	}

	return url[idx:]
}
