package service

// InvitationType is the payload type of guest invitation QR codes.
const InvitationType = "invitation"

// Invitation is the content encoded into a guest invitation QR code.
type Invitation struct {
	Type    string `json:"type"`
	EventID uint   `json:"event_id"`
	GuestID uint   `json:"guest_id"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInvitationQR renders a PNG QR code inviting a guest to an event.
	GenerateInvitationQR(eventID, guestID uint) ([]byte, error)

	// ParseInvitationQR decodes the text content of an invitation QR code.
	ParseInvitationQR(qrData string) (*Invitation, error)
}
