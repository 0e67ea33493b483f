package usecase

import (
	"context"
	"io"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddProductInput carries the fields for creating a catalog product.
type AddProductInput struct {
	SellerID      uuid.UUID       `json:"sellerId"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Unit          string          `json:"unit"`
	Quantity      int             `json:"quantity"`
	IsEcoFriendly bool            `json:"isEcoFriendly"`
	UnitsPerPack  int             `json:"unitsPerPack,omitempty"`
}

// UpdateProductInput carries optional field updates for a product.
type UpdateProductInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
}

// ImageUpload is a product photo payload to be stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// SellerProducts splits a seller's catalog by availability.
type SellerProducts struct {
	Available  []*entity.Product `json:"available"`
	OutOfStock []*entity.Product `json:"outOfStock"`
}

// CatalogUsecase defines the seller-side product management use cases.
type CatalogUsecase interface {
	// AddProduct creates a product and links its name into the seller's
	// offered-product list used by discovery.
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)

	// AddProductWithImage creates a product and stores its photo, recording
	// the public image URL on the product.
	AddProductWithImage(ctx context.Context, input *AddProductInput, image *ImageUpload) (*entity.Product, error)

	// UpdateProduct applies partial updates to an existing product.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// GetSellerProducts lists a seller's products split by availability.
	GetSellerProducts(ctx context.Context, sellerID uuid.UUID) (*SellerProducts, error)

	// GetPaymentQR renders the PNG payment QR code for the seller's UPI VPA.
	GetPaymentQR(ctx context.Context, sellerID uuid.UUID) ([]byte, error)
}
