// Package qrcode renders the check-in QR codes printed on dining tables.
package qrcode

import (
	"encoding/json"

	"console/internal/domain/service"
	"console/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	TableID int    `json:"table_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTableQR generates a PNG QR code encoding the check-in payload for a table.
func (s *qrcodeService) GenerateTableQR(tableID int) ([]byte, error) {
	data := QRCodeData{
		TableID: tableID,
		Type:    "table-checkin",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTableQR parses QR code data and returns the table ID.
func (s *qrcodeService) ParseTableQR(qrData string) (int, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code data")
	}

	if data.Type != "table-checkin" {
		return 0, errors.Errorf("unexpected QR code type %q", data.Type)
	}
	if data.TableID <= 0 {
		return 0, errors.New("QR code carries no table id")
	}

	return data.TableID, nil
}
