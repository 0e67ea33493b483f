package qrcode

import (
	"fmt"
	"net/url"

	"mandi/config"
	"mandi/internal/domain/entity"
	"mandi/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}

		switch cfg.QRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders a PNG QR code encoding the seller's UPI payment
// URI so buyers can pay the stall directly from any UPI app.
func (s *qrcodeService) GeneratePaymentQR(seller *entity.Seller) ([]byte, error) {
	if seller.UpiID == "" {
		return nil, fmt.Errorf("seller %s has no UPI VPA", seller.ID)
	}

	uri := paymentURI(seller.UpiID, seller.Name)

	qrCode, err := qrcode.New(uri, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// paymentURI builds a upi://pay deep link per the NPCI linking spec.
func paymentURI(vpa, payeeName string) string {
	query := url.Values{}
	query.Set("pa", vpa)
	query.Set("pn", payeeName)
	query.Set("cu", "INR")

	return "upi://pay?" + query.Encode()
}
