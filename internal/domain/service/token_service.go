package service

import (
	"mandi/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the signed credential.
type Claims struct {
	AccountID uuid.UUID   `json:"accountId"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed,
// time-limited credentials. It abstracts the token format from the use cases.
type TokenService interface {
	// GenerateToken creates a signed credential for the given account and role.
	GenerateToken(accountID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
