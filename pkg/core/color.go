package core

// ColorRGB holds a linear RGB triple with non-negative float32 channels.
type ColorRGB struct {
	R, G, B float32
}

// Common colors used by the built-in scenes.
var (
	White   = ColorRGB{1, 1, 1}
	Black   = ColorRGB{0, 0, 0}
	Red     = ColorRGB{1, 0, 0}
	Green   = ColorRGB{0, 1, 0}
	Blue    = ColorRGB{0, 0, 1}
	Yellow  = ColorRGB{1, 1, 0}
	Magenta = ColorRGB{1, 0, 1}
)

// NewColorRGB creates a new color
func NewColorRGB(r, g, b float32) ColorRGB {
	return ColorRGB{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c ColorRGB) Add(other ColorRGB) ColorRGB {
	return ColorRGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors
func (c ColorRGB) Subtract(other ColorRGB) ColorRGB {
	return ColorRGB{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c ColorRGB) Multiply(scalar float32) ColorRGB {
	return ColorRGB{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyRGB returns the channel-wise product of two colors
func (c ColorRGB) MultiplyRGB(other ColorRGB) ColorRGB {
	return ColorRGB{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Divide returns the color divided by a scalar
func (c ColorRGB) Divide(scalar float32) ColorRGB {
	return ColorRGB{c.R / scalar, c.G / scalar, c.B / scalar}
}

// MaxToOne rescales the color into [0,1]: when the largest channel exceeds 1
// every channel is divided by it; each channel is then clamped.
func (c ColorRGB) MaxToOne() ColorRGB {
	maxChannel := max(c.R, max(c.G, c.B))
	if maxChannel > 1 {
		c = c.Divide(maxChannel)
	}
	return ColorRGB{
		R: Clampf(c.R, 0, 1),
		G: Clampf(c.G, 0, 1),
		B: Clampf(c.B, 0, 1),
	}
}
