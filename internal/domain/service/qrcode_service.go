package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateTableQR generates a PNG QR code encoding the check-in payload
	// for a dining table.
	GenerateTableQR(tableID int) ([]byte, error)

	// ParseTableQR parses QR code data and returns the table ID.
	ParseTableQR(qrData string) (int, error)
}
