// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Seller is the core entity for a registered stall or shop.
// Its location is captured at registration and stays immutable unless the
// seller explicitly edits it.
type Seller struct {
	ID              uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the seller.
	Name            string    `json:"name"`                 // The stall/shop name shown to buyers.
	OwnerName       string    `json:"ownerName"`            // The legal name of the shop owner.
	Email           string    `json:"email,omitempty"`      // Optional contact email.
	Phone           string    `json:"phone"`                // The seller's phone number, unique per seller.
	PasswordHash    string    `json:"-"`                    // The bcrypt hash of the seller's password. Never serialized.
	Address         string    `json:"address"`              // The human-readable street address of the stall.
	Latitude        float64   `json:"latitude"`             // The geographic latitude of the stall.
	Longitude       float64   `json:"longitude"`            // The geographic longitude of the stall.
	OfferedProducts []string  `json:"products"`             // Free-text names of the products this seller offers.
	Categories      []string  `json:"categories,omitempty"` // Storefront categories, e.g. "Groceries", "Vegetables".
	FssaiNumber     string    `json:"fssaiNumber"`          // The seller's FSSAI license number, unique per seller.
	UpiID           string    `json:"upiId,omitempty"`      // The seller's UPI VPA used for payment QR codes.
	IsOpen          bool      `json:"isOpen"`               // Whether the stall is currently open for orders.
	CreatedAt       time.Time `json:"createdAt"`            // Timestamp of when this seller registered.
	UpdatedAt       time.Time `json:"updatedAt"`            // Timestamp of the last modification.
}

// OffersProduct reports whether the seller's offered-product list contains
// a case-insensitive substring match for the given product name. An empty
// name matches every seller.
func (s *Seller) OffersProduct(name string) bool {
	if name == "" {
		return true
	}

	needle := strings.ToLower(name)
	for _, offered := range s.OfferedProducts {
		if strings.Contains(strings.ToLower(offered), needle) {
			return true
		}
	}

	return false
}
