package display

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells on the screen. Each
// terminal row shows two framebuffer rows through the upper half block, with
// the top pixel as foreground and the bottom pixel as background.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.cellColor(col, topY),
					Bg: fb.cellColor(col, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func (fb *Framebuffer) cellColor(x, y int) color.Color {
	if y >= fb.Height {
		return nil
	}
	r, g, b := UnpackRGB(fb.At(x, y))
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// FramebufferSizeFor returns the pixel dimensions backing a terminal of the
// given cell size (double vertical resolution via half blocks)
func FramebufferSizeFor(cols, rows int) (width, height int) {
	return cols, rows * 2
}
