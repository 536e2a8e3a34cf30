package qrcode

import (
	"fmt"
	"net/url"

	"marketbot/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const deepLinkFormat = "https://t.me/%s?start=%s"

type qrcodeService struct {
	botUsername          string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(botUsername string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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
		botUsername:          botUsername,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// DeepLink returns the t.me start link that redeems token
func (s *qrcodeService) DeepLink(token string) string {
	return fmt.Sprintf(deepLinkFormat, s.botUsername, url.QueryEscape(token))
}

// GenerateLinkQR encodes the deep link of token as a PNG image
func (s *qrcodeService) GenerateLinkQR(token string) ([]byte, error) {
	if token == "" {
		return nil, errors.New("link token is empty")
	}

	qrCode, err := qrcode.New(s.DeepLink(token), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
