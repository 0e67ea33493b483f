package service

import "mandi/internal/domain/entity"

// QRCodeService defines the interface for payment QR code generation.
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code encoding the seller's UPI
	// payment URI. Sellers without a UPI VPA cannot have a payment code.
	GeneratePaymentQR(seller *entity.Seller) ([]byte, error)
}
