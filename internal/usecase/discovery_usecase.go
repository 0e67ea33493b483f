// Package usecase defines the application-layer interfaces and their
// input/output types. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"mandi/internal/domain/entity"
)

// DefaultMaxDistanceKm is the seller-discovery range used when the caller
// does not supply a positive maximum distance.
const DefaultMaxDistanceKm = 35.0

// FindClosestSellerInput carries the buyer location and optional filters
// for seller discovery.
type FindClosestSellerInput struct {
	BuyerLat      float64 `json:"buyerLat"`
	BuyerLon      float64 `json:"buyerLon"`
	ProductName   string  `json:"productName,omitempty"`
	MaxDistanceKm float64 `json:"MAX_DISTANCE_KM,omitempty"`
}

// RankedSeller pairs a candidate seller with its distance from the buyer,
// rounded to two decimal places for presentation.
type RankedSeller struct {
	Seller     *entity.Seller `json:"seller"`
	DistanceKm float64        `json:"distance_km"`
}

// RankedResult is the tiered outcome of seller discovery.
//
// Tier 1: at least one candidate within range - Closest points at the
// nearest in-range seller and WithinRange holds the full sorted partition.
// Tier 2: candidates exist but all beyond range - Closest points at the
// nearest out-of-range seller, BeyondRange holds the sorted partition and
// BlinkitSuggestion offers an external search link.
// Tier 3: no candidates at all - only Note and BlinkitSuggestion are set.
type RankedResult struct {
	Found             bool           `json:"-"`
	InRange           bool           `json:"-"`
	Closest           *RankedSeller  `json:"closestSeller,omitempty"`
	WithinRange       []RankedSeller `json:"allSellersWithinRange,omitempty"`
	BeyondRange       []RankedSeller `json:"allSellersBeyondRange,omitempty"`
	Note              string         `json:"note"`
	BlinkitSuggestion string         `json:"blinkitSuggestion,omitempty"`
}

// DiscoveryUsecase defines the geo-based seller discovery use cases.
type DiscoveryUsecase interface {
	// FindClosestSeller ranks candidate sellers by haversine distance from
	// the buyer and partitions them by the maximum distance threshold.
	FindClosestSeller(ctx context.Context, input *FindClosestSellerInput) (*RankedResult, error)
}
