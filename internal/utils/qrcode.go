package utils

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRCodePNG membuat QR code sebagai PNG bytes
func GenerateQRCodePNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("gagal generate QR code: %w", err)
	}
	return png, nil
}

// RecordURL adalah alamat halaman detail record di aplikasi kader,
// dipakai sebagai isi QR code pada kartu.
func RecordURL(appURL, resource string, id int64) string {
	return fmt.Sprintf("%s/kader/%s/%d", strings.TrimRight(appURL, "/"), resource, id)
}
