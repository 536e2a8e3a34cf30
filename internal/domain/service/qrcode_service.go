package service

// QRCodeService renders account link deep links as QR codes
type QRCodeService interface {
	// DeepLink returns the chat deep link that redeems the given link token
	DeepLink(token string) string

	// GenerateLinkQR encodes the deep link of the token as a PNG image
	GenerateLinkQR(token string) ([]byte, error)
}
