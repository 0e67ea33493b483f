package usecase

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterBuyerInput carries the fields for buyer registration.
type RegisterBuyerInput struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email,omitempty"`
	Password  string  `json:"password"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RegisterSellerInput carries the fields for seller registration.
type RegisterSellerInput struct {
	Name            string   `json:"name"`
	OwnerName       string   `json:"ownerName"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email,omitempty"`
	Password        string   `json:"password"`
	Address         string   `json:"address,omitempty"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	OfferedProducts []string `json:"products,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	FssaiNumber     string   `json:"fssaiNumber"`
	UpiID           string   `json:"upiId,omitempty"`
}

// LoginInput carries the credentials for a login attempt.
type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthOutput is the result of a successful registration or login.
type AuthOutput struct {
	Token     string      `json:"token"`
	Role      entity.Role `json:"role"`
	AccountID uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
}

// AuthUsecase defines registration and login for both account roles.
type AuthUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*AuthOutput, error)
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*AuthOutput, error)
	LoginBuyer(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginSeller(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
