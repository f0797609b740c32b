package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateLinkQR encodes an arbitrary URL as a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}
