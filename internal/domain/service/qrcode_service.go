package service

// QRCodeService renders and reads order tracking QR codes.
type QRCodeService interface {
	// GenerateOrderQR returns a PNG that encodes the tracking URL of orderCode.
	GenerateOrderQR(orderCode string) ([]byte, error)

	// ParseOrderQR extracts the order code from scanned QR content.
	ParseOrderQR(qrData string) (string, error)
}
