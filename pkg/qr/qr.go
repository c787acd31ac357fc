package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator renders scannable labels encoding a SKU as 300px PNG files
// under a public directory. The encoded content is the bare SKU string;
// the scanner on the client side hands it straight back to the API.
type Generator struct {
	Dir string
}

func NewGenerator(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Generate writes <dir>/<sku>.png and returns the public path to serve it.
func (g *Generator) Generate(sku string) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("QR generation failed: %w", err)
	}

	filePath := filepath.Join(g.Dir, sku+".png")
	if err := qrcode.WriteFile(sku, qrcode.Medium, 300, filePath); err != nil {
		return "", fmt.Errorf("QR generation failed: %w", err)
	}

	return "/qrcodes/" + sku + ".png", nil
}
