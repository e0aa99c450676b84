package qrcode

import (
	"net/url"
	"path"
	"strings"

	"apparel/internal/domain/identifier"
	"apparel/internal/domain/service"
	"apparel/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	trackingPrefix = "/orders/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service whose codes point at baseURL/orders/{code}.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOrderQR renders the tracking URL of orderCode as a PNG.
func (s *qrcodeService) GenerateOrderQR(orderCode string) ([]byte, error) {
	if !isOrderCode(orderCode) {
		return nil, errors.Errorf("invalid order code: %s", orderCode)
	}

	qrCode, err := qrcode.New(s.trackingURL(orderCode), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR accepts a scanned tracking URL or a bare order code.
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	data := strings.TrimSpace(qrData)
	if isOrderCode(data) {
		return data, nil
	}

	u, err := url.Parse(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}
	if !strings.Contains(u.Path, trackingPrefix) {
		return "", errors.Errorf("not an order tracking QR code: %s", data)
	}

	code := path.Base(u.Path)
	if !isOrderCode(code) {
		return "", errors.Errorf("invalid order code in QR code: %s", code)
	}

	return code, nil
}

func (s *qrcodeService) trackingURL(orderCode string) string {
	return s.baseURL + trackingPrefix + orderCode
}

func isOrderCode(code string) bool {
	prefix, _, ok := identifier.Parse(code)

	return ok && prefix == identifier.PrefixOrder
}
