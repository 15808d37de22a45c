package raster

// Pixel values are 32-bit ARGB with 8 bits per channel, alpha always opaque.
const (
	// White is the rectangle interior color
	White uint32 = 0xFFFFFFFF

	// Black is the background color
	Black uint32 = 0xFF000000
)

// ARGB packs channels into a single pixel value
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Split unpacks a pixel value into its channels
func Split(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}
