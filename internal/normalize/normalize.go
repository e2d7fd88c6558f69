// Package normalize transcodes frame buffers between pixel formats.
//
// Two conversions are provided: ToRGB888 expands any supported encoding to
// packed 3-byte truecolor, and Unpack spreads sub-byte palette and grayscale
// formats out to one byte per pixel. Neither function retains or frees the
// buffers it is given.
package normalize

import (
	"errors"
	"fmt"

	"github.com/gogpu/sixelframe/internal/pixfmt"
)

// Normalization errors.
var (
	// ErrUnsupportedFormat is returned when the source format cannot be converted.
	ErrUnsupportedFormat = errors.New("normalize: unsupported pixel format")

	// ErrBufferTooSmall is returned when a source or destination buffer is
	// shorter than the geometry requires.
	ErrBufferTooSmall = errors.New("normalize: buffer too small")

	// ErrMissingPalette is returned when a palette-indexed source comes without a palette.
	ErrMissingPalette = errors.New("normalize: palette required")
)

// ToRGB888 writes width*height*3 bytes of truecolor into dst.
// palette is only read for palette-indexed sources; indices beyond its end
// resolve to black.
func ToRGB888(dst, src []byte, format pixfmt.Format, width, height int, palette []byte) (pixfmt.Format, error) {
	if !format.IsValid() {
		return format, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err := checkSizes(dst, src, format, pixfmt.RGB888, width, height); err != nil {
		return format, err
	}

	switch {
	case format == pixfmt.RGB888:
		copy(dst, src[:width*height*3])
	case format.IsPalette():
		if len(palette) == 0 {
			return format, ErrMissingPalette
		}
		expandPalette(dst, src, format, width, height, palette)
	case format.IsSubByte():
		expandGray(dst, src, format, width, height)
	default:
		expandRGB(dst, src, format, width, height)
	}

	return pixfmt.RGB888, nil
}

// Unpack spreads PAL1/PAL2/PAL4 into PAL8 indices and G1/G2/G4 into G8
// levels scaled to the full 0-255 range. Any other format is reported as
// unsupported.
func Unpack(dst, src []byte, format pixfmt.Format, width, height int) (pixfmt.Format, error) {
	if !format.IsSubByte() {
		return format, fmt.Errorf("%w: %v is not a packed format", ErrUnsupportedFormat, format)
	}
	target := format.Expanded()
	if err := checkSizes(dst, src, format, target, width, height); err != nil {
		return format, err
	}

	scale := format.IsGrayscale()
	bits := format.BitsPerPixel()
	maxLevel := byte(1<<bits - 1)
	rowBytes := format.RowBytes(width)

	i := 0
	for y := 0; y < height; y++ {
		row := src[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < width; x++ {
			v := unpackAt(row, x, bits)
			if scale {
				v = byte(int(v) * 255 / int(maxLevel))
			}
			dst[i] = v
			i++
		}
	}

	return target, nil
}

func checkSizes(dst, src []byte, from, to pixfmt.Format, width, height int) error {
	if need := from.ImageBytes(width, height); len(src) < need {
		return fmt.Errorf("%w: source has %d bytes, %v %dx%d needs %d",
			ErrBufferTooSmall, len(src), from, width, height, need)
	}
	if need := to.ImageBytes(width, height); len(dst) < need {
		return fmt.Errorf("%w: destination has %d bytes, %v %dx%d needs %d",
			ErrBufferTooSmall, len(dst), to, width, height, need)
	}
	return nil
}

// unpackAt extracts pixel x of a row packed most significant bit first.
func unpackAt(row []byte, x, bits int) byte {
	perByte := 8 / bits
	shift := uint(8 - bits*(x%perByte+1))
	return row[x/perByte] >> shift & byte(1<<bits-1)
}

func expandPalette(dst, src []byte, format pixfmt.Format, width, height int, palette []byte) {
	bits := format.BitsPerPixel()
	rowBytes := format.RowBytes(width)
	colors := len(palette) / 3

	d := 0
	for y := 0; y < height; y++ {
		row := src[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < width; x++ {
			var idx int
			if bits == 8 {
				idx = int(row[x])
			} else {
				idx = int(unpackAt(row, x, bits))
			}
			if idx < colors {
				copy(dst[d:d+3], palette[idx*3:idx*3+3])
			} else {
				dst[d], dst[d+1], dst[d+2] = 0, 0, 0
			}
			d += 3
		}
	}
}

func expandGray(dst, src []byte, format pixfmt.Format, width, height int) {
	bits := format.BitsPerPixel()
	maxLevel := 1<<bits - 1
	rowBytes := format.RowBytes(width)

	d := 0
	for y := 0; y < height; y++ {
		row := src[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < width; x++ {
			v := byte(int(unpackAt(row, x, bits)) * 255 / maxLevel)
			dst[d], dst[d+1], dst[d+2] = v, v, v
			d += 3
		}
	}
}

// expandRGB handles every whole-byte encoding other than palettes.
func expandRGB(dst, src []byte, format pixfmt.Format, width, height int) {
	depth := format.BytesPerPixel()
	n := width * height

	for i := 0; i < n; i++ {
		p := src[i*depth : i*depth+depth]
		r, g, b := decodePixel(p, format)
		dst[i*3] = r
		dst[i*3+1] = g
		dst[i*3+2] = b
	}
}

func decodePixel(p []byte, format pixfmt.Format) (r, g, b byte) {
	switch format {
	case pixfmt.RGB555:
		w := uint16(p[0])<<8 | uint16(p[1])
		return byte(w>>10&0x1f) << 3, byte(w>>5&0x1f) << 3, byte(w&0x1f) << 3
	case pixfmt.RGB565:
		w := uint16(p[0])<<8 | uint16(p[1])
		return byte(w>>11&0x1f) << 3, byte(w>>5&0x3f) << 2, byte(w&0x1f) << 3
	case pixfmt.BGR555:
		w := uint16(p[0])<<8 | uint16(p[1])
		return byte(w&0x1f) << 3, byte(w>>5&0x1f) << 3, byte(w>>10&0x1f) << 3
	case pixfmt.BGR565:
		w := uint16(p[0])<<8 | uint16(p[1])
		return byte(w&0x1f) << 3, byte(w>>5&0x3f) << 2, byte(w>>11&0x1f) << 3
	case pixfmt.BGR888:
		return p[2], p[1], p[0]
	case pixfmt.ARGB8888:
		return p[1], p[2], p[3]
	case pixfmt.RGBA8888:
		return p[0], p[1], p[2]
	case pixfmt.ABGR8888:
		return p[3], p[2], p[1]
	case pixfmt.BGRA8888:
		return p[2], p[1], p[0]
	case pixfmt.G8:
		return p[0], p[0], p[0]
	case pixfmt.GA88:
		return p[0], p[0], p[0]
	case pixfmt.AG88:
		return p[1], p[1], p[1]
	default:
		return 0, 0, 0
	}
}
