package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"mandi/internal/delivery/http/response"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SellerHandler holds dependencies for seller catalog handlers.
type SellerHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddProduct handles product creation. It accepts a JSON body, or a
// multipart form when the product ships with a photo.
func (h *SellerHandler) AddProduct(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.addProductFromForm(c, sellerID)
	}

	var input usecase.AddProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	input.SellerID = sellerID

	product, err := h.uc.AddProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added successfully")
}

func (h *SellerHandler) addProductFromForm(c echo.Context, sellerID uuid.UUID) error {
	input, err := parseProductForm(c, sellerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var image *usecase.ImageUpload
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Unreadable product image")
		}
		defer src.Close()

		image = &usecase.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get(echo.HeaderContentType),
			Body:        src,
		}
	}

	product, err := h.uc.AddProductWithImage(c.Request().Context(), input, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added successfully")
}

func parseProductForm(c echo.Context, sellerID uuid.UUID) (*usecase.AddProductInput, error) {
	input := &usecase.AddProductInput{
		SellerID:    sellerID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Unit:        c.FormValue("unit"),
	}

	if raw := c.FormValue("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("price must be a decimal number")
		}
		input.Price = price
	}

	if raw := c.FormValue("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("quantity must be an integer")
		}
		input.Quantity = quantity
	}

	if raw := c.FormValue("isEcoFriendly"); raw != "" {
		isEco, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("isEcoFriendly must be a boolean")
		}
		input.IsEcoFriendly = isEco
	}

	if raw := c.FormValue("unitsPerPack"); raw != "" {
		units, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("unitsPerPack must be an integer")
		}
		input.UnitsPerPack = units
	}

	return input, nil
}

// UpdateProduct handles partial product updates.
func (h *SellerHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product update input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles product removal.
func (h *SellerHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": productID.String()}, "Product deleted successfully")
}

// GetProducts lists a seller's catalog split by availability.
func (h *SellerHandler) GetProducts(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	products, err := h.uc.GetSellerProducts(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetPaymentQR renders the seller's UPI payment QR code as a PNG image.
func (h *SellerHandler) GetPaymentQR(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	png, err := h.uc.GetPaymentQR(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
