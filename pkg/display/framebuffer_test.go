package display

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestPackUnpackRGB(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{12, 34, 56},
	}

	for _, tt := range tests {
		packed := PackRGB(tt.r, tt.g, tt.b)
		r, g, b := UnpackRGB(packed)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("roundtrip (%d,%d,%d) -> (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	if len(fb.Pixels) != 8 {
		t.Fatalf("Buffer length = %d, want 8", len(fb.Pixels))
	}

	fb.SetPixel(1*4+2, PackRGB(10, 20, 30)) // (2, 1)
	if got := fb.At(2, 1); got != PackRGB(10, 20, 30) {
		t.Errorf("At(2,1) = %#x", got)
	}
	if got := fb.At(0, 0); got != 0 {
		t.Errorf("Untouched pixel = %#x, want 0", got)
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.SetPixel(0, PackRGB(255, 0, 0))
	fb.SetPixel(1, PackRGB(0, 0, 255))

	img := fb.ToImage()
	r, _, _, a := img.At(0, 0).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("Pixel (0,0) = %v, want opaque red", img.At(0, 0))
	}
	_, _, b, _ := img.At(1, 0).RGBA()
	if b != 0xffff {
		t.Errorf("Pixel (1,0) = %v, want blue", img.At(1, 0))
	}
}

func TestSaveBMP(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	fb.Clear(PackRGB(128, 64, 32))

	path := filepath.Join(t.TempDir(), "RayTracing_Buffer.bmp")
	if err := fb.SaveBMP(path); err != nil {
		t.Fatalf("SaveBMP: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer file.Close()

	img, err := bmp.Decode(file)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Errorf("Screenshot bounds = %v, want 8x4", img.Bounds())
	}
}

func TestSaveBMPBadPath(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	if err := fb.SaveBMP(filepath.Join(t.TempDir(), "missing", "x.bmp")); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
