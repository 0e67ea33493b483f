package model

import (
	"time"

	"github.com/google/uuid"
)

// BuyerModel mirrors the 'buyers' table. The wallet columns live on the
// buyer row itself so point mutations are single-row atomic updates.
// A check constraint keeps the balance from ever going negative.
type BuyerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20);unique;not null"`
	Email        string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:text"`
	Latitude     float64   `gorm:"type:double precision"`
	Longitude    float64   `gorm:"type:double precision"`

	WalletPoints      int `gorm:"not null;default:0;check:wallet_points >= 0"`
	WalletTotalEarned int `gorm:"not null;default:0"`
	WalletTotalUsed   int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}
