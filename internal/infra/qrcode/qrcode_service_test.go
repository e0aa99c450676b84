package qrcode

import (
	"testing"

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
		{"Default error correction", 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://shop.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com/")

	qrBytes, err := service.GenerateOrderQR("O-101")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderQR_RejectsNonOrderCode(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")

	_, err := service.GenerateOrderQR("D-101")
	assert.Error(t, err)

	_, err = service.GenerateOrderQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "tracking url", data: "https://shop.example.com/orders/O-205", want: "O-205"},
		{name: "bare code", data: " O-101 ", want: "O-101"},
		{name: "other path", data: "https://shop.example.com/designs/D-101", wantErr: true},
		{name: "design code in order path", data: "https://shop.example.com/orders/D-101", wantErr: true},
		{name: "garbage", data: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseOrderQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
