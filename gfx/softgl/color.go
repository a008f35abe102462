package softgl

import "fmt"

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ColorFromFloat clamps each channel to [0,1] and scales it to 0..255,
// truncating the fraction.
func ColorFromFloat(r, g, b Scalar) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b)}
}

// ColorFromPacked unpacks a 0xRRGGBB value.
func ColorFromPacked(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// Packed returns the color as 0xRRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Lerp blends from c toward o by t. t is not clamped.
func (c Color) Lerp(o Color, t Scalar) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(Scalar(a) + (Scalar(b)-Scalar(a))*t)
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d)", c.R, c.G, c.B)
}

func unitToByte(v Scalar) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}
