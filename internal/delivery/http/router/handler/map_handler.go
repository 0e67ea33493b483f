package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/geo"
	"mandi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DistanceRequest carries two coordinate pairs for a point-to-point
// distance calculation. Pointer fields so zero coordinates still pass
// the required check.
type DistanceRequest struct {
	Lat1 *float64 `json:"lat1" validate:"required,min=-90,max=90"`
	Lon1 *float64 `json:"lon1" validate:"required,min=-180,max=180"`
	Lat2 *float64 `json:"lat2" validate:"required,min=-90,max=90"`
	Lon2 *float64 `json:"lon2" validate:"required,min=-180,max=180"`
}

// FindClosestSellersRequest carries the buyer location and optional
// filters for seller discovery. The coordinates are pointers so a missing
// field is rejected instead of defaulting to (0, 0).
type FindClosestSellersRequest struct {
	BuyerLat      *float64 `json:"buyerLat" validate:"required,min=-90,max=90"`
	BuyerLon      *float64 `json:"buyerLon" validate:"required,min=-180,max=180"`
	ProductName   string   `json:"productName"`
	MaxDistanceKm float64  `json:"MAX_DISTANCE_KM"`
}

// MapHandler holds dependencies for the geo endpoints.
type MapHandler struct {
	uc     usecase.DiscoveryUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler, injected by Fx.
func NewMapHandler(uc usecase.DiscoveryUsecase, logger *slog.Logger) *MapHandler {
	return &MapHandler{
		uc:     uc,
		logger: logger,
	}
}

// Distance handles the point-to-point haversine distance request.
func (h *MapHandler) Distance(c echo.Context) error {
	var req DistanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinate input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	km := geo.HaversineKm(*req.Lat1, *req.Lon1, *req.Lat2, *req.Lon2)

	return response.Success(c, http.StatusOK, map[string]float64{
		"distance": geo.RoundKm(km),
	}, "Distance calculated successfully")
}

// FindClosestSellers handles the tiered seller discovery request.
func (h *MapHandler) FindClosestSellers(c echo.Context) error {
	var req FindClosestSellersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discovery input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.FindClosestSellerInput{
		BuyerLat:      *req.BuyerLat,
		BuyerLon:      *req.BuyerLon,
		ProductName:   req.ProductName,
		MaxDistanceKm: req.MaxDistanceKm,
	}

	output, err := h.uc.FindClosestSeller(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Seller discovery completed")
}
