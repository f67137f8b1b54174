package payment

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"ag-topup/internal/models"
)

// QRGenerator renders the receiving-number QR shown next to each wallet. The
// payload is what the wallet apps expect to scan: "<Wallet>:<number>".
type QRGenerator struct {
	receivingNumber string
	size            int
}

func NewQRGenerator(receivingNumber string, size int) *QRGenerator {
	if size <= 0 {
		size = 256
	}
	return &QRGenerator{receivingNumber: receivingNumber, size: size}
}

// WalletQR returns a PNG QR code for the given wallet.
func (q *QRGenerator) WalletQR(method models.PaymentMethod) ([]byte, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method: %q", method)
	}
	payload := fmt.Sprintf("%s:%s", method.DisplayName(), q.receivingNumber)
	return qrcode.Encode(payload, qrcode.Medium, q.size)
}
