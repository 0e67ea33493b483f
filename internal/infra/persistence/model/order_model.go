package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderItemRecord is a single line item serialized into the order's JSON
// items column. Line items never change after placement, so they don't need
// their own table.
type OrderItemRecord struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID         uuid.UUID                             `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID                             `gorm:"type:uuid;not null;index"`
	Items           datatypes.JSONSlice[OrderItemRecord]  `gorm:"not null"`
	TotalPrice      decimal.Decimal                       `gorm:"type:numeric(12,2);not null"`
	ShippingAddress string                                `gorm:"type:text;not null"`
	Status          string                                `gorm:"type:varchar(20);not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
