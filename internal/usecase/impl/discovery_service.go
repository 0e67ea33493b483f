package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"mandi/config"
	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/geo"
	"mandi/internal/usecase"
	"mandi/internal/util"
)

type discoveryService struct {
	sellerRepo   repository.SellerRepository
	defaultMaxKm float64
	logger       *slog.Logger
}

// rankedCandidate keeps the raw distance for sorting; the rounded value is
// produced only at the response edge.
type rankedCandidate struct {
	seller     *entity.Seller
	distanceKm float64
}

// NewDiscoveryService creates a new seller discovery service instance
func NewDiscoveryService(sellerRepo repository.SellerRepository, cfg *config.Config, logger *slog.Logger) usecase.DiscoveryUsecase {
	defaultMaxKm := usecase.DefaultMaxDistanceKm
	if cfg.Discovery != nil && cfg.Discovery.MaxDistanceKm > 0 {
		defaultMaxKm = cfg.Discovery.MaxDistanceKm
	}

	return &discoveryService{
		sellerRepo:   sellerRepo,
		defaultMaxKm: defaultMaxKm,
		logger:       logger,
	}
}

// FindClosestSeller implements the tiered distance ranking over candidate sellers.
func (s *discoveryService) FindClosestSeller(ctx context.Context, input *usecase.FindClosestSellerInput) (*usecase.RankedResult, error) {
	if err := validateCoordinate(input.BuyerLat, input.BuyerLon); err != nil {
		return nil, err
	}

	maxDistance := input.MaxDistanceKm
	if maxDistance <= 0 {
		maxDistance = s.defaultMaxKm
	}

	// The repository pre-filters with a case-insensitive pattern; the
	// definitive substring match happens here so ranking stays deterministic
	// regardless of store behavior.
	candidates, err := s.sellerRepo.FindByOfferedProduct(ctx, input.ProductName)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query candidate sellers")
	}

	var withinRange, beyondRange []rankedCandidate
	for _, seller := range candidates {
		if !seller.OffersProduct(input.ProductName) {
			continue
		}

		distance := geo.HaversineKm(input.BuyerLat, input.BuyerLon, seller.Latitude, seller.Longitude)
		candidate := rankedCandidate{seller: seller, distanceKm: distance}

		if distance <= maxDistance {
			withinRange = append(withinRange, candidate)
		} else {
			beyondRange = append(beyondRange, candidate)
		}
	}

	// Stable sort on raw distances; ties keep the store's query order.
	sortByDistance(withinRange)
	sortByDistance(beyondRange)

	switch {
	case len(withinRange) > 0:
		ranked := toRankedSellers(withinRange)

		return &usecase.RankedResult{
			Found:       true,
			InRange:     true,
			Closest:     &ranked[0],
			WithinRange: ranked,
			Note: fmt.Sprintf("There are %d sellers offering %q within %g km.",
				len(ranked), input.ProductName, maxDistance),
		}, nil

	case len(beyondRange) > 0:
		ranked := toRankedSellers(beyondRange)

		return &usecase.RankedResult{
			Found:       true,
			InRange:     false,
			Closest:     &ranked[0],
			BeyondRange: ranked,
			Note: fmt.Sprintf("No sellers found within %g km. Closest seller found beyond range.",
				maxDistance),
			BlinkitSuggestion: util.BlinkitSearchURL(input.ProductName),
		}, nil

	default:
		s.logger.Info("no sellers found for product",
			slog.String("productName", input.ProductName))

		return &usecase.RankedResult{
			Note:              fmt.Sprintf("No sellers found offering %q.", input.ProductName),
			BlinkitSuggestion: util.BlinkitSearchURL(input.ProductName),
		}, nil
	}
}

func sortByDistance(candidates []rankedCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distanceKm < candidates[j].distanceKm
	})
}

func toRankedSellers(candidates []rankedCandidate) []usecase.RankedSeller {
	ranked := make([]usecase.RankedSeller, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, usecase.RankedSeller{
			Seller:     c.seller,
			DistanceKm: geo.RoundKm(c.distanceKm),
		})
	}

	return ranked
}

// validateCoordinate rejects out-of-range WGS84 coordinates before any query runs.
func validateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("latitude %v out of range [-90, 90]", lat))
	}
	if lon < -180 || lon > 180 {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("longitude %v out of range [-180, 180]", lon))
	}

	return nil
}
