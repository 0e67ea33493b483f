package impl

import (
	"context"
	"strings"
	"testing"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	mockrepo "mandi/internal/mocks/repository"
	mockservice "mandi/internal/mocks/service"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	svc         usecase.CatalogUsecase
	productRepo *mockrepo.MockProductRepository
	sellerRepo  *mockrepo.MockSellerRepository
	images      *mockservice.MockImageStorage
	qr          *mockservice.MockQRCodeService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	f := &catalogFixture{
		productRepo: mockrepo.NewMockProductRepository(t),
		sellerRepo:  mockrepo.NewMockSellerRepository(t),
		images:      mockservice.NewMockImageStorage(t),
		qr:          mockservice.NewMockQRCodeService(t),
	}
	f.svc = NewCatalogService(f.productRepo, f.sellerRepo, f.images, f.qr, newDiscardLogger())

	return f
}

func validAddProductInput(sellerID uuid.UUID) *usecase.AddProductInput {
	return &usecase.AddProductInput{
		SellerID: sellerID,
		Name:     "Bamboo Straws",
		Category: "Eco",
		Price:    decimal.NewFromInt(99),
		Unit:     "packs",
		Quantity: 20,

		IsEcoFriendly: true,
		UnitsPerPack:  100,
	}
}

func TestAddProduct_LinksNameIntoSellerOfferings(t *testing.T) {
	f := newCatalogFixture(t)
	seller := &entity.Seller{
		ID:              uuid.New(),
		OfferedProducts: []string{"potato"},
	}

	f.sellerRepo.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)
	f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(product *entity.Product) bool {
		return product.SellerID == seller.ID && product.IsEcoFriendly && product.UnitsPerPack == 100
	})).Return(nil)
	f.sellerRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.Seller) bool {
		return len(s.OfferedProducts) == 2 && s.OfferedProducts[1] == "Bamboo Straws"
	})).Return(nil)

	product, err := f.svc.AddProduct(context.Background(), validAddProductInput(seller.ID))

	require.NoError(t, err)
	assert.Equal(t, "Bamboo Straws", product.Name)
	assert.Empty(t, product.ImageURL)
}

func TestAddProduct_SkipsOfferingUpdateWhenAlreadyListed(t *testing.T) {
	f := newCatalogFixture(t)
	seller := &entity.Seller{
		ID:              uuid.New(),
		OfferedProducts: []string{"bamboo straws"},
	}

	f.sellerRepo.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)
	f.productRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.AddProduct(context.Background(), validAddProductInput(seller.ID))

	require.NoError(t, err)
	f.sellerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddProduct_UnknownSeller(t *testing.T) {
	f := newCatalogFixture(t)
	sellerID := uuid.New()

	f.sellerRepo.On("FindByID", mock.Anything, sellerID).
		Return(nil, repository.ErrSellerNotFound)

	_, err := f.svc.AddProduct(context.Background(), validAddProductInput(sellerID))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrSellerNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAddProduct_RejectsNonPositivePrice(t *testing.T) {
	f := newCatalogFixture(t)

	input := validAddProductInput(uuid.New())
	input.Price = decimal.Zero

	_, err := f.svc.AddProduct(context.Background(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAddProductWithImage_RecordsPublicURL(t *testing.T) {
	f := newCatalogFixture(t)
	seller := &entity.Seller{ID: uuid.New()}

	f.images.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "products/"+seller.ID.String()+"/") &&
			strings.HasSuffix(key, ".jpg")
	}), "image/jpeg", mock.Anything).
		Return("https://img.example.com/products/abc.jpg", nil)
	f.sellerRepo.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)
	f.productRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.sellerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	product, err := f.svc.AddProductWithImage(context.Background(),
		validAddProductInput(seller.ID),
		&usecase.ImageUpload{
			Filename:    "straws.jpg",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("not-really-a-jpeg"),
		})

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/products/abc.jpg", product.ImageURL)
}

func TestAddProductWithImage_UploadFailure(t *testing.T) {
	f := newCatalogFixture(t)
	sellerID := uuid.New()

	f.images.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, err := f.svc.AddProductWithImage(context.Background(),
		validAddProductInput(sellerID),
		&usecase.ImageUpload{Filename: "straws.jpg", ContentType: "image/jpeg", Body: strings.NewReader("x")})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrImageUploadFailed.ErrorCode(), appErr.ErrorCode())
	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProduct_AppliesPartialChanges(t *testing.T) {
	f := newCatalogFixture(t)
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Bamboo Straws",
		Price:    decimal.NewFromInt(99),
		Quantity: 20,
	}

	f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	f.productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Quantity == 0 && p.Name == "Bamboo Straws"
	})).Return(nil)

	zero := 0
	updated, err := f.svc.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{
		Quantity: &zero,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(99)))
}

func TestDeleteProduct_RemovesStoredImage(t *testing.T) {
	f := newCatalogFixture(t)
	product := &entity.Product{
		ID:       uuid.New(),
		ImageURL: "https://img.example.com/products/abc/photo.jpg",
	}

	f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	f.productRepo.On("Delete", mock.Anything, product.ID).Return(nil)
	f.images.On("Delete", mock.Anything, "products/abc/photo.jpg").Return(nil)

	require.NoError(t, f.svc.DeleteProduct(context.Background(), product.ID))
}

func TestGetSellerProducts_SplitsByAvailability(t *testing.T) {
	f := newCatalogFixture(t)
	sellerID := uuid.New()

	inStock := &entity.Product{ID: uuid.New(), Quantity: 5}
	soldOut := &entity.Product{ID: uuid.New(), Quantity: 0}

	f.productRepo.On("FindBySeller", mock.Anything, sellerID).
		Return([]*entity.Product{inStock, soldOut}, nil)

	out, err := f.svc.GetSellerProducts(context.Background(), sellerID)

	require.NoError(t, err)
	require.Len(t, out.Available, 1)
	require.Len(t, out.OutOfStock, 1)
	assert.Equal(t, inStock.ID, out.Available[0].ID)
	assert.Equal(t, soldOut.ID, out.OutOfStock[0].ID)
}

func TestGetPaymentQR_RendersSellerCode(t *testing.T) {
	f := newCatalogFixture(t)

	seller := &entity.Seller{ID: uuid.New(), Name: "Sharma General Store", UpiID: "sharma@upi"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	f.sellerRepo.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)
	f.qr.On("GeneratePaymentQR", seller).Return(png, nil)

	out, err := f.svc.GetPaymentQR(context.Background(), seller.ID)

	require.NoError(t, err)
	assert.Equal(t, png, out)
}

func TestGetPaymentQR_RequiresUpiAddress(t *testing.T) {
	f := newCatalogFixture(t)

	seller := &entity.Seller{ID: uuid.New(), Name: "Cash Only Kirana"}
	f.sellerRepo.On("FindByID", mock.Anything, seller.ID).Return(seller, nil)

	_, err := f.svc.GetPaymentQR(context.Background(), seller.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	f.qr.AssertNotCalled(t, "GeneratePaymentQR", mock.Anything)
}

func TestGetPaymentQR_UnknownSeller(t *testing.T) {
	f := newCatalogFixture(t)
	sellerID := uuid.New()

	f.sellerRepo.On("FindByID", mock.Anything, sellerID).
		Return(nil, repository.ErrSellerNotFound)

	_, err := f.svc.GetPaymentQR(context.Background(), sellerID)

	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}
