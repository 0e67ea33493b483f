package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	Quantity    int             `gorm:"not null;default:0"`
	ImageURL    string          `gorm:"type:text"`

	IsEcoFriendly bool `gorm:"not null;default:false"`
	UnitsPerPack  int  `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
