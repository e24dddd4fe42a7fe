package encode

import (
	"imgarray/pkg/pixel"
)

// encodeBitPacked packs 8 consecutive pixels of the flattened row-major
// scan into one byte, first pixel at the top bit. Packing groups may
// straddle row boundaries. A trailing partial group is left-shifted so
// the bits beyond the image stay zero.
func encodeBitPacked(buf *pixel.Buffer, level uint8) *Stream {
	pix := buf.Bytes()
	out := make([]byte, 0, (len(pix)+7)/8)

	for i := 0; i < len(pix); i += 8 {
		end := i + 8
		if end > len(pix) {
			end = len(pix)
		}

		var b byte
		for _, v := range pix[i:end] {
			b <<= 1
			if v > level {
				b |= 1
			}
		}
		b <<= uint(8 - (end - i))

		out = append(out, b)
	}

	return &Stream{Data: out, UnitSize: 1, WidthDelim: 8}
}
