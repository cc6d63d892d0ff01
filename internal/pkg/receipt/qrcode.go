package receipt

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

const qrSize = 256

// Renderer turns a receipt into a PNG image.
type Renderer interface {
	Render(receipt *model.Receipt) ([]byte, error)
}

// QRRenderer encodes receipts as QR codes.
type QRRenderer struct{}

// Content returns the text encoded in the QR code.
func Content(receipt *model.Receipt) string {
	return fmt.Sprintf("receipt:%s;total:%d;items:%d", receipt.ID, receipt.Total, len(receipt.Items))
}

func (QRRenderer) Render(receipt *model.Receipt) ([]byte, error) {
	return qrcode.Encode(Content(receipt), qrcode.Medium, qrSize)
}
