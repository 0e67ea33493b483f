package impl

import (
	"context"
	"testing"

	"mandi/config"
	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	mockrepo "mandi/internal/mocks/repository"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Buyer sits at Connaught Place; sellers are offset north by whole
// fractions of a degree. One degree of latitude is about 111.19 km.
const (
	buyerLat = 28.6139
	buyerLon = 77.2090
)

func sellerAt(name string, latOffset float64, products ...string) *entity.Seller {
	return &entity.Seller{
		ID:              uuid.New(),
		Name:            name,
		Latitude:        buyerLat + latOffset,
		Longitude:       buyerLon,
		OfferedProducts: products,
	}
}

func TestFindClosestSeller_RanksWithinRange(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	svc := NewDiscoveryService(sellerRepo, &config.Config{}, newDiscardLogger())

	near := sellerAt("near", 0.05, "potato", "onion")     // ~5.56 km
	mid := sellerAt("mid", 0.1, "potato")                 // ~11.12 km
	far := sellerAt("far", 0.4, "potato", "green potato") // ~44.47 km

	sellerRepo.On("FindByOfferedProduct", mock.Anything, "potato").
		Return([]*entity.Seller{far, near, mid}, nil)

	result, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
		BuyerLat:    buyerLat,
		BuyerLon:    buyerLon,
		ProductName: "potato",
	})

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.True(t, result.InRange)

	require.Len(t, result.WithinRange, 2)
	assert.Equal(t, "near", result.WithinRange[0].Seller.Name)
	assert.Equal(t, "mid", result.WithinRange[1].Seller.Name)

	require.NotNil(t, result.Closest)
	assert.Equal(t, near.ID, result.Closest.Seller.ID)
	assert.InDelta(t, 5.56, result.Closest.DistanceKm, 0.01)

	require.Len(t, result.BeyondRange, 0)
	assert.Equal(t, `There are 2 sellers offering "potato" within 35 km.`, result.Note)
	assert.Empty(t, result.BlinkitSuggestion)
}

func TestFindClosestSeller_AllBeyondRange(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	svc := NewDiscoveryService(sellerRepo, &config.Config{}, newDiscardLogger())

	farther := sellerAt("farther", 0.6, "ghee") // ~66.71 km
	far := sellerAt("far", 0.4, "ghee")         // ~44.47 km

	sellerRepo.On("FindByOfferedProduct", mock.Anything, "ghee").
		Return([]*entity.Seller{farther, far}, nil)

	result, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
		BuyerLat:    buyerLat,
		BuyerLon:    buyerLon,
		ProductName: "ghee",
	})

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.False(t, result.InRange)
	assert.Empty(t, result.WithinRange)

	require.Len(t, result.BeyondRange, 2)
	assert.Equal(t, "far", result.BeyondRange[0].Seller.Name)

	require.NotNil(t, result.Closest)
	assert.Equal(t, far.ID, result.Closest.Seller.ID)
	assert.Equal(t, "No sellers found within 35 km. Closest seller found beyond range.", result.Note)
	assert.Equal(t, "https://www.blinkit.com/search?query=ghee", result.BlinkitSuggestion)
}

func TestFindClosestSeller_NoCandidates(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	svc := NewDiscoveryService(sellerRepo, &config.Config{}, newDiscardLogger())

	sellerRepo.On("FindByOfferedProduct", mock.Anything, "eco friendly bags").
		Return([]*entity.Seller{}, nil)

	result, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
		BuyerLat:    buyerLat,
		BuyerLon:    buyerLon,
		ProductName: "eco friendly bags",
	})

	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Nil(t, result.Closest)
	assert.Equal(t, `No sellers found offering "eco friendly bags".`, result.Note)
	assert.Equal(t, "https://www.blinkit.com/search?query=eco+friendly+bags", result.BlinkitSuggestion)
}

func TestFindClosestSeller_CustomMaxDistance(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	svc := NewDiscoveryService(sellerRepo, &config.Config{}, newDiscardLogger())

	mid := sellerAt("mid", 0.1, "potato") // ~11.12 km

	sellerRepo.On("FindByOfferedProduct", mock.Anything, "potato").
		Return([]*entity.Seller{mid}, nil)

	result, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
		BuyerLat:      buyerLat,
		BuyerLon:      buyerLon,
		ProductName:   "potato",
		MaxDistanceKm: 10,
	})

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.False(t, result.InRange)
	require.Len(t, result.BeyondRange, 1)
	assert.Equal(t, "No sellers found within 10 km. Closest seller found beyond range.", result.Note)
}

func TestFindClosestSeller_ConfiguredDefaultRange(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	cfg := &config.Config{Discovery: &config.DiscoveryConfig{MaxDistanceKm: 8}}
	svc := NewDiscoveryService(sellerRepo, cfg, newDiscardLogger())

	mid := sellerAt("mid", 0.1, "potato") // ~11.12 km

	sellerRepo.On("FindByOfferedProduct", mock.Anything, "potato").
		Return([]*entity.Seller{mid}, nil)

	// No per-request maximum, so the configured default applies.
	result, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
		BuyerLat:    buyerLat,
		BuyerLon:    buyerLon,
		ProductName: "potato",
	})

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.False(t, result.InRange)
	assert.Equal(t, "No sellers found within 8 km. Closest seller found beyond range.", result.Note)
}

func TestFindClosestSeller_FiltersNonMatchingCandidates(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	svc := NewDiscoveryService(sellerRepo, &config.Config{}, newDiscardLogger())

	match := sellerAt("match", 0.05, "Organic Tomato")
	noMatch := sellerAt("no-match", 0.01, "potato")

	// The store's pre-filter may overshoot; the ranking layer re-checks.
	sellerRepo.On("FindByOfferedProduct", mock.Anything, "tomato").
		Return([]*entity.Seller{noMatch, match}, nil)

	result, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
		BuyerLat:    buyerLat,
		BuyerLon:    buyerLon,
		ProductName: "tomato",
	})

	require.NoError(t, err)
	require.Len(t, result.WithinRange, 1)
	assert.Equal(t, match.ID, result.WithinRange[0].Seller.ID)
}

func TestFindClosestSeller_RejectsBadCoordinates(t *testing.T) {
	sellerRepo := mockrepo.NewMockSellerRepository(t)
	svc := NewDiscoveryService(sellerRepo, &config.Config{}, newDiscardLogger())

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude too high", 91, 77},
		{"latitude too low", -91, 77},
		{"longitude too high", 28, 181},
		{"longitude too low", 28, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.FindClosestSeller(context.Background(), &usecase.FindClosestSellerInput{
				BuyerLat: tc.lat,
				BuyerLon: tc.lon,
			})

			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}
