package qr

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateWritesLabelFile(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(filepath.Join(dir, "qrcodes"))

	publicPath, err := g.Generate("ACC-UNI-1234")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if publicPath != "/qrcodes/ACC-UNI-1234.png" {
		t.Errorf("unexpected public path %s", publicPath)
	}

	info, err := os.Stat(filepath.Join(dir, "qrcodes", "ACC-UNI-1234.png"))
	if err != nil {
		t.Fatalf("label file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("label file is empty")
	}
}
