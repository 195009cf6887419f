package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestColumnRect(t *testing.T) {
	tests := []struct {
		name             string
		srcX, srcY, srcH float64
		want             image.Rectangle
		ok               bool
	}{
		{"full column", 3, 0, 64, image.Rect(3, 0, 4, 64), true},
		{"fractional window", 7.9, 10.25, 20.5, image.Rect(7, 10, 8, 31), true},
		{"clamped at bottom", 0, 60, 10, image.Rect(0, 60, 1, 64), true},
		{"negative start clamps", 1, -2, 4, image.Rect(1, 0, 2, 2), true},
		{"column outside", 64, 0, 64, image.Rectangle{}, false},
		{"window below texture", 1, 70, 5, image.Rectangle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := columnRect(64, 64, tt.srcX, tt.srcY, tt.srcH)
			if ok != tt.ok || got != tt.want {
				t.Errorf("columnRect = %v %v, want %v %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPlaceholderImage(t *testing.T) {
	img := placeholderImage(2)
	if b := img.Bounds(); b.Dx() != placeholderSize || b.Dy() != placeholderSize {
		t.Fatalf("unexpected placeholder size %v", b)
	}

	base := WallColor(2)
	if got := img.RGBAAt(1, 1); got != base {
		t.Errorf("first tile = %v, want %v", got, base)
	}
	if got := img.RGBAAt(0, 5); got.R != base.R/4 {
		t.Errorf("expected mortar at the tile edge, got %v", got)
	}
	tile := placeholderSize / 4
	if got := img.RGBAAt(tile+1, 1); got.R != base.R/2 {
		t.Errorf("expected dark checker in the second tile, got %v", got)
	}
}

func TestPlaceholderColorCycles(t *testing.T) {
	n := len(placeholderPalette)
	if WallColor(1) != WallColor(1+n) {
		t.Error("palette should wrap around")
	}
	if WallColor(0) != WallColor(1) {
		t.Error("ids below one use the first color")
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "wall.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := decodeFile(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("unexpected bounds %v", b)
	}

	if _, err := decodeFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.png")
	os.WriteFile(bad, []byte("not an image"), 0o644)
	if _, err := decodeFile(bad); err == nil {
		t.Error("expected error for undecodable file")
	}
}
