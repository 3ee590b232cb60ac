// Package qr renders PIX payloads as QR code images.
package qr

import (
	"fmt"
	"io"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Renderer encodes payload text as a PNG QR code. Medium error correction
// is what banking apps expect for a BR Code.
type Renderer struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Renderer{size: size, level: qrcode.Medium}
}

// PNG returns the PNG encoding of content.
func (r *Renderer) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: empty content")
	}
	png, err := qrcode.Encode(content, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	return png, nil
}

// WritePNG writes the PNG encoding of content to w.
func (r *Renderer) WritePNG(w io.Writer, content string) error {
	png, err := r.PNG(content)
	if err != nil {
		return err
	}
	_, err = w.Write(png)
	return err
}

// WriteFile writes the PNG encoding of content to path.
func (r *Renderer) WriteFile(path, content string) error {
	png, err := r.PNG(content)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}

// ASCII returns a terminal rendering of content, one block per module.
func (r *Renderer) ASCII(content string) (string, error) {
	q, err := qrcode.New(content, r.level)
	if err != nil {
		return "", fmt.Errorf("qr: encode: %w", err)
	}
	var sb strings.Builder
	for _, row := range q.Bitmap() {
		for _, dark := range row {
			if dark {
				sb.WriteString("\u2588\u2588")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
