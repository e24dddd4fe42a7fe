package encode

import (
	"imgarray/pkg/pixel"
)

// encodeRaw copies the normalized channel bytes verbatim in row-major
// order. Output length is always width*height*unit, no padding.
func encodeRaw(buf *pixel.Buffer) *Stream {
	return &Stream{
		Data:       append([]byte(nil), buf.Bytes()...),
		UnitSize:   buf.PixelSize(),
		WidthDelim: 1,
	}
}
