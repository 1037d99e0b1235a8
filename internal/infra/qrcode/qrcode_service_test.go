package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"high", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateInvitationQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateInvitationQR(12, 34)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateInvitationQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GenerateInvitationQR(1, 2)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_ParseInvitationQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	raw, err := json.Marshal(service.Invitation{Type: service.InvitationType, EventID: 5, GuestID: 9})
	require.NoError(t, err)

	inv, err := svc.ParseInvitationQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, uint(5), inv.EventID)
	assert.Equal(t, uint(9), inv.GuestID)
}

func TestQRCodeService_ParseInvitationQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not a qr payload"},
		{"wrong type", `{"type":"subscription","event_id":1,"guest_id":2}`},
		{"missing guest", `{"type":"invitation","event_id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := svc.ParseInvitationQR(tt.data)
			assert.Error(t, err)
			assert.Nil(t, inv)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})
	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, impl.size)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}})
	impl, ok = svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 300, impl.size)
	assert.Equal(t, qrcode.Highest, impl.level)
}
