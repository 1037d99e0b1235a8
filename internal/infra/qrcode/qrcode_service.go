package qrcode

import (
	"encoding/json"
	"strings"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// parseRecoveryLevel accepts the letter codes L/M/Q/H or the level names.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateInvitationQR renders the invitation payload as a PNG QR code.
func (s *qrcodeService) GenerateInvitationQR(eventID, guestID uint) ([]byte, error) {
	payload, err := json.Marshal(service.Invitation{
		Type:    service.InvitationType,
		EventID: eventID,
		GuestID: guestID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseInvitationQR decodes the text scanned from an invitation QR code.
func (s *qrcodeService) ParseInvitationQR(qrData string) (*service.Invitation, error) {
	var data service.Invitation
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != service.InvitationType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.EventID == 0 || data.GuestID == 0 {
		return nil, errors.New("QR code is missing event or guest id")
	}

	return &data, nil
}
