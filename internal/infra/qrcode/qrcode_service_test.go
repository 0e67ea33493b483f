package qrcode

import (
	"testing"

	"mandi/config"
	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentQR_ProducesPNG(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"},
	}
	svc := NewQRCodeService(cfg)

	png, err := svc.GeneratePaymentQR(&entity.Seller{
		ID:    uuid.New(),
		Name:  "Sharma General Store",
		UpiID: "sharma@upi",
	})

	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestGeneratePaymentQR_RequiresUpiID(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GeneratePaymentQR(&entity.Seller{
		ID:   uuid.New(),
		Name: "Sharma General Store",
	})

	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestPaymentURI_EncodesVPAAndName(t *testing.T) {
	uri := paymentURI("sharma@upi", "Sharma General Store")

	assert.Contains(t, uri, "upi://pay?")
	assert.Contains(t, uri, "pa=sharma%40upi")
	assert.Contains(t, uri, "pn=Sharma+General+Store")
	assert.Contains(t, uri, "cu=INR")
}
