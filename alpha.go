package sixelframe

import "image/color"

// channelOrder returns the byte offsets of red, green, blue and alpha within
// a 4-byte pixel, and false for formats without that layout.
func channelOrder(format PixelFormat) (r, g, b, a int, ok bool) {
	switch format {
	case FormatRGBA8888:
		return 0, 1, 2, 3, true
	case FormatARGB8888:
		return 1, 2, 3, 0, true
	case FormatABGR8888:
		return 3, 2, 1, 0, true
	case FormatBGRA8888:
		return 2, 1, 0, 3, true
	default:
		return 0, 0, 0, 0, false
	}
}

// StripAlpha turns a 4-byte alpha format into RGB888 in place.
//
// With bg == nil the alpha byte is dropped. Otherwise each pixel is
// composited over bg with an 8-bit fixed-point blend,
// (c*a + bg*(255-a) + 255) >> 8. The bias is a deliberate strengthening of
// the plain >> 8 blend: fully opaque pixels keep their color and fully
// transparent pixels become bg exactly.
//
// The compacted pixels are written to the front of the same buffer, which is
// not shrunk. Formats without an alpha byte of their own are left alone.
func (f *Frame) StripAlpha(bg color.Color) error {
	ri, gi, bi, ai, ok := channelOrder(f.format)
	if !ok {
		return nil
	}
	if err := f.checkPixels(); err != nil {
		return err
	}

	px := f.pixels
	n := f.width * f.height

	// The write cursor d = 3i never passes the read cursor s = 4i, and every
	// source byte is read before its pixel is written.
	if bg == nil {
		for i := 0; i < n; i++ {
			s, d := i*4, i*3
			r, g, b := px[s+ri], px[s+gi], px[s+bi]
			px[d], px[d+1], px[d+2] = r, g, b
		}
	} else {
		c := color.NRGBAModel.Convert(bg).(color.NRGBA)
		for i := 0; i < n; i++ {
			s, d := i*4, i*3
			a := int(px[s+ai])
			r := blend(px[s+ri], c.R, a)
			g := blend(px[s+gi], c.G, a)
			b := blend(px[s+bi], c.B, a)
			px[d], px[d+1], px[d+2] = r, g, b
		}
	}

	f.format = FormatRGB888
	return nil
}

// blend composites src over bg at alpha a (0-255) with a shift by 8 in
// place of a division by 255. Unlike a plain truncating shift, the +255
// bias rounds up so that a = 255 yields src and a = 0 yields bg exactly;
// values in between may be one above the truncated result.
func blend(src, bg uint8, a int) uint8 {
	return uint8((int(src)*a + int(bg)*(255-a) + 255) >> 8)
}
