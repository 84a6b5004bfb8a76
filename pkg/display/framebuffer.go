// Package display owns the pixel buffer, its terminal presentation and the
// BMP screenshot path.
package display

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// Framebuffer is a linear buffer of W*H packed 32-bit pixels. The renderer
// writes each pixel exactly once per frame through PackRGB + SetPixel, so no
// synchronization is needed between pixel workers.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFramebuffer allocates a buffer for the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// PackRGB packs 8-bit channels into the buffer's XRGB8888 layout
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a packed pixel back into 8-bit channels
func UnpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// SetPixel writes the packed pixel at the linear index
func (fb *Framebuffer) SetPixel(index int, pixel uint32) {
	fb.Pixels[index] = pixel
}

// At returns the packed pixel at (x, y)
func (fb *Framebuffer) At(x, y int) uint32 {
	return fb.Pixels[y*fb.Width+x]
}

// Clear fills the buffer with a single packed pixel value
func (fb *Framebuffer) Clear(pixel uint32) {
	for i := range fb.Pixels {
		fb.Pixels[i] = pixel
	}
}

// ToImage unpacks the buffer into an opaque RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := UnpackRGB(fb.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// SaveBMP writes the current buffer contents to a BMP file
func (fb *Framebuffer) SaveBMP(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create screenshot %q: %w", filename, err)
	}
	defer file.Close()

	if err := bmp.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("encode screenshot %q: %w", filename, err)
	}
	return nil
}
