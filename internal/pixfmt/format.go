// Package pixfmt describes the pixel encodings a frame buffer can carry.
//
// Values follow the sixel pixel-format numbering so buffers handed over by
// decoders can be labelled without translation.
package pixfmt

// Format represents a pixel storage format.
type Format uint8

const (
	// RGB555 is 15-bit RGB packed into a big-endian 16-bit word.
	RGB555 Format = 0x01

	// RGB565 is 16-bit RGB packed into a big-endian 16-bit word.
	RGB565 Format = 0x02

	// RGB888 is 24-bit truecolor (3 bytes per pixel). This is the
	// canonical format every conversion ends in.
	RGB888 Format = 0x03

	// BGR555 is RGB555 with red and blue swapped.
	BGR555 Format = 0x04

	// BGR565 is RGB565 with red and blue swapped.
	BGR565 Format = 0x05

	// BGR888 is 24-bit truecolor stored blue first.
	BGR888 Format = 0x06

	// ARGB8888 is 32-bit truecolor with a leading alpha byte.
	ARGB8888 Format = 0x10

	// RGBA8888 is 32-bit truecolor with a trailing alpha byte.
	RGBA8888 Format = 0x11

	// ABGR8888 is 32-bit truecolor, alpha first, blue before red.
	ABGR8888 Format = 0x12

	// BGRA8888 is 32-bit truecolor, blue first, alpha last.
	BGRA8888 Format = 0x13

	// G1 is 1-bit grayscale, rows byte aligned, most significant bit first.
	G1 Format = 0x40

	// G2 is 2-bit grayscale.
	G2 Format = 0x41

	// G4 is 4-bit grayscale.
	G4 Format = 0x42

	// G8 is 8-bit grayscale (1 byte per pixel).
	G8 Format = 0x43

	// AG88 is grayscale with a leading alpha byte.
	AG88 Format = 0x53

	// GA88 is grayscale with a trailing alpha byte.
	GA88 Format = 0x63

	// PAL1 is 1-bit palette-indexed, rows byte aligned, most significant bit first.
	PAL1 Format = 0x80

	// PAL2 is 2-bit palette-indexed.
	PAL2 Format = 0x81

	// PAL4 is 4-bit palette-indexed.
	PAL4 Format = 0x82

	// PAL8 is 8-bit palette-indexed (1 byte per pixel).
	PAL8 Format = 0x83
)

// Info contains metadata about a pixel format.
type Info struct {
	// BitsPerPixel is the storage size of a single pixel.
	BitsPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// IsPalette indicates if pixels are indices into a palette.
	IsPalette bool

	name string
}

var infoTable = map[Format]Info{
	RGB555:   {BitsPerPixel: 16, name: "RGB555"},
	RGB565:   {BitsPerPixel: 16, name: "RGB565"},
	RGB888:   {BitsPerPixel: 24, name: "RGB888"},
	BGR555:   {BitsPerPixel: 16, name: "BGR555"},
	BGR565:   {BitsPerPixel: 16, name: "BGR565"},
	BGR888:   {BitsPerPixel: 24, name: "BGR888"},
	ARGB8888: {BitsPerPixel: 32, HasAlpha: true, name: "ARGB8888"},
	RGBA8888: {BitsPerPixel: 32, HasAlpha: true, name: "RGBA8888"},
	ABGR8888: {BitsPerPixel: 32, HasAlpha: true, name: "ABGR8888"},
	BGRA8888: {BitsPerPixel: 32, HasAlpha: true, name: "BGRA8888"},
	G1:       {BitsPerPixel: 1, IsGrayscale: true, name: "G1"},
	G2:       {BitsPerPixel: 2, IsGrayscale: true, name: "G2"},
	G4:       {BitsPerPixel: 4, IsGrayscale: true, name: "G4"},
	G8:       {BitsPerPixel: 8, IsGrayscale: true, name: "G8"},
	AG88:     {BitsPerPixel: 16, HasAlpha: true, IsGrayscale: true, name: "AG88"},
	GA88:     {BitsPerPixel: 16, HasAlpha: true, IsGrayscale: true, name: "GA88"},
	PAL1:     {BitsPerPixel: 1, IsPalette: true, name: "PAL1"},
	PAL2:     {BitsPerPixel: 2, IsPalette: true, name: "PAL2"},
	PAL4:     {BitsPerPixel: 4, IsPalette: true, name: "PAL4"},
	PAL8:     {BitsPerPixel: 8, IsPalette: true, name: "PAL8"},
}

// Info returns the Info for this format. Unknown formats yield the zero Info.
func (f Format) Info() Info {
	return infoTable[f]
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	_, ok := infoTable[f]
	return ok
}

// BitsPerPixel returns the number of bits one pixel occupies.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// BytesPerPixel returns the number of bytes per pixel, or 0 for formats
// that pack several pixels into one byte.
func (f Format) BytesPerPixel() int {
	return f.Info().BitsPerPixel / 8
}

// IsSubByte reports whether several pixels share one byte.
func (f Format) IsSubByte() bool {
	bits := f.BitsPerPixel()
	return bits > 0 && bits < 8
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsPalette returns true if pixels index into a palette.
func (f Format) IsPalette() bool {
	return f.Info().IsPalette
}

// Expanded returns the 8-bit format a sub-byte format unpacks to.
// Other formats are returned unchanged.
func (f Format) Expanded() Format {
	switch f {
	case PAL1, PAL2, PAL4:
		return PAL8
	case G1, G2, G4:
		return G8
	default:
		return f
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	if info, ok := infoTable[f]; ok {
		return info.name
	}
	return "Unknown"
}

// RowBytes calculates the number of bytes needed for a row of the given width.
// Sub-byte rows are padded to a whole byte.
func (f Format) RowBytes(width int) int {
	return (width*f.BitsPerPixel() + 7) / 8
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
