// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item owned by a single seller.
type Product struct {
	ID          uuid.UUID       `json:"id"`                    // The Global Unique Identifier (GUID) for the product.
	SellerID    uuid.UUID       `json:"sellerId"`              // The seller that owns this product.
	Name        string          `json:"name"`                  // The product name.
	Description string          `json:"description,omitempty"` // Optional free-text description.
	Category    string          `json:"category"`              // The catalog category, e.g. "Vegetables".
	Price       decimal.Decimal `json:"price"`                 // The price per unit.
	Unit        string          `json:"unit"`                  // The selling unit, e.g. "kg", "packs".
	Quantity    int             `json:"quantity"`              // Stock on hand. Zero means out of stock.
	ImageURL    string          `json:"imageUrl,omitempty"`    // Public URL of the product photo, if uploaded.

	// IsEcoFriendly marks products whose purchase accrues credit points.
	// This field is the single source of truth for point eligibility.
	IsEcoFriendly bool `json:"isEcoFriendly"`

	// UnitsPerPack is the number of countable eco units one purchased unit
	// contains (e.g. a pack of 50 reusable bags has UnitsPerPack == 50).
	// Defaults to 1 for products sold as single units.
	UnitsPerPack int `json:"unitsPerPack"`

	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this product was created.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification.
}

// EcoUnits returns the number of eco-friendly units a purchase of the given
// quantity contributes toward point accrual. Non-eco products contribute
// nothing.
func (p *Product) EcoUnits(quantity int) int {
	if !p.IsEcoFriendly || quantity <= 0 {
		return 0
	}

	unitsPerPack := p.UnitsPerPack
	if unitsPerPack <= 0 {
		unitsPerPack = 1
	}

	return quantity * unitsPerPack
}
