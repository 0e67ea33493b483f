// Package model defines the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SellerModel mirrors the 'sellers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type SellerModel struct {
	ID              uuid.UUID                  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string                     `gorm:"type:varchar(100);not null"`
	OwnerName       string                     `gorm:"type:varchar(100)"`
	Email           string                     `gorm:"type:varchar(255)"`
	Phone           string                     `gorm:"type:varchar(20);unique;not null"`
	PasswordHash    string                     `gorm:"type:varchar(255);not null"`
	Address         string                     `gorm:"type:text"`
	Latitude        float64                    `gorm:"type:double precision;not null"`
	Longitude       float64                    `gorm:"type:double precision;not null"`
	OfferedProducts datatypes.JSONSlice[string]
	Categories      datatypes.JSONSlice[string]
	FssaiNumber     string                     `gorm:"type:varchar(20);unique;not null"`
	UpiID           string                     `gorm:"type:varchar(255)"`
	IsOpen          bool                       `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
