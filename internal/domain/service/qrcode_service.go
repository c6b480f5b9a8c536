package service

import "github.com/google/uuid"

// QRCodeService defines the contract for generating and parsing link-invite
// QR codes. A supplier shares the code with prospective consumers; scanning
// it resolves to a link request against that supplier.
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code encoding a link invite for the
	// supplier company.
	GenerateInviteQR(supplierID uuid.UUID) ([]byte, error)

	// ParseInviteQR decodes invite payload data back into the supplier ID.
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
