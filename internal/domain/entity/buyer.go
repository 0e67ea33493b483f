// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is the core entity for a registered customer.
type Buyer struct {
	ID           uuid.UUID    `json:"id"`              // The Global Unique Identifier (GUID) for the buyer.
	Name         string       `json:"name"`            // The buyer's display name.
	Phone        string       `json:"phone"`           // The buyer's phone number, unique per buyer.
	Email        string       `json:"email,omitempty"` // Optional contact email.
	PasswordHash string       `json:"-"`               // The bcrypt hash of the buyer's password. Never serialized.
	Address      string       `json:"address"`         // The buyer's default delivery address.
	Latitude     float64      `json:"latitude"`        // The geographic latitude of the buyer's default location.
	Longitude    float64      `json:"longitude"`       // The geographic longitude of the buyer's default location.
	Wallet       CreditWallet `json:"creditWallet"`    // The buyer's credit wallet. Owned exclusively by the buyer.
	CreatedAt    time.Time    `json:"createdAt"`       // Timestamp of when this buyer registered.
	UpdatedAt    time.Time    `json:"updatedAt"`       // Timestamp of the last modification.
}

// CreditWallet tracks the redeemable credit points a buyer has earned
// through eco-friendly purchases.
//
// Invariant: Points == TotalEarned - TotalUsed and Points >= 0. TotalEarned
// and TotalUsed only ever increase. The persistence layer enforces this with
// atomic increment/decrement updates rather than read-modify-write.
type CreditWallet struct {
	Points      int `json:"points"`      // Current redeemable balance.
	TotalEarned int `json:"totalEarned"` // Lifetime points earned. Monotonic.
	TotalUsed   int `json:"totalUsed"`   // Lifetime points redeemed. Monotonic.
}
