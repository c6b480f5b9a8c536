package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	supplierID := uuid.New()

	qrBytes, err := service.GenerateInviteQR(supplierID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	supplierID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		SupplierID: supplierID.String(),
		Type:       "link_invite",
	})
	require.NoError(t, err)

	parsed, err := service.ParseInviteQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, supplierID, parsed)
}

func TestQRCodeService_ParseInviteQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		SupplierID: uuid.New().String(),
		Type:       "subscription",
	})
	require.NoError(t, err)

	_, err = service.ParseInviteQR(string(payload))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseInviteQR_Malformed(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseInviteQR("not json at all")
	assert.Error(t, err)

	payload, marshalErr := json.Marshal(QRCodeData{
		SupplierID: "not-a-uuid",
		Type:       "link_invite",
	})
	require.NoError(t, marshalErr)

	_, err = service.ParseInviteQR(string(payload))
	assert.Error(t, err)
}
